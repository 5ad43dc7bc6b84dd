package employee

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/staff-directory/internal/handler"
	"github.com/jwalitptl/staff-directory/internal/handler/handlertest"
	"github.com/jwalitptl/staff-directory/internal/model"
	"github.com/jwalitptl/staff-directory/internal/repository"
	"github.com/jwalitptl/staff-directory/internal/service/mocks"
	apperrors "github.com/jwalitptl/staff-directory/pkg/errors"
)

func setup(resp handler.Responder) (*gin.Engine, *mocks.EmployeeService, *mocks.MessageService) {
	employees := new(mocks.EmployeeService)
	messages := new(mocks.MessageService)
	h := NewHandler(employees, messages, resp)
	return handlertest.NewEngine(h.RegisterRoutes), employees, messages
}

func TestListEmployeesEmpty(t *testing.T) {
	engine, employees, _ := setup(handler.Responder{})
	employees.On("ListEmployees", mock.Anything).Return([]*model.Employee{}, nil)

	resp := handlertest.Do(t, engine, http.MethodGet, "/employees", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, resp.IsSuccess())
	assert.JSONEq(t, `[]`, string(resp.Data))
}

func TestListEmployeesFailureHidesCause(t *testing.T) {
	engine, employees, _ := setup(handler.Responder{})
	employees.On("ListEmployees", mock.Anything).Return(nil, errors.New("pq: connection refused"))

	resp := handlertest.Do(t, engine, http.MethodGet, "/employees", nil)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Failed to fetch employees", resp.Message)
	assert.Empty(t, resp.Error)
}

func TestListEmployeesFailureExposesCause(t *testing.T) {
	engine, employees, _ := setup(handler.Responder{ExposeErrors: true})
	employees.On("ListEmployees", mock.Anything).Return(nil, errors.New("pq: connection refused"))

	resp := handlertest.Do(t, engine, http.MethodGet, "/employees", nil)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Error, "connection refused")
}

func TestGetEmployee(t *testing.T) {
	engine, employees, _ := setup(handler.Responder{})
	employees.On("GetEmployee", mock.Anything, int64(1)).
		Return(&model.Employee{ID: 1, FirstName: "Ann", LastName: "Lee"}, nil)

	resp := handlertest.Do(t, engine, http.MethodGet, "/employee/1", nil)

	require.Equal(t, http.StatusOK, resp.Code)
	var got model.Employee
	resp.DecodeData(t, &got)
	assert.Equal(t, "Ann", got.FirstName)
}

func TestGetEmployeeNotFound(t *testing.T) {
	engine, employees, _ := setup(handler.Responder{})
	employees.On("GetEmployee", mock.Anything, int64(9)).
		Return(nil, apperrors.NotFound("Employee", repository.ErrNotFound))

	resp := handlertest.Do(t, engine, http.MethodGet, "/employee/9", nil)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Employee not found", resp.Message)
}

func TestGetEmployeeMalformedID(t *testing.T) {
	engine, employees, _ := setup(handler.Responder{})

	resp := handlertest.Do(t, engine, http.MethodGet, "/employee/abc", nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	employees.AssertNotCalled(t, "GetEmployee", mock.Anything, mock.Anything)
}

func TestCreateEmployeeRoundTrip(t *testing.T) {
	engine, employees, _ := setup(handler.Responder{})
	employees.On("CreateEmployee", mock.Anything, mock.AnythingOfType("*model.Employee")).
		Run(func(args mock.Arguments) { args.Get(1).(*model.Employee).ID = 4 }).
		Return(nil)

	resp := handlertest.Do(t, engine, http.MethodPost, "/employee/add",
		map[string]string{"first_name": "Ann", "last_name": "Lee"})

	require.Equal(t, http.StatusCreated, resp.Code)
	var got model.Employee
	resp.DecodeData(t, &got)
	assert.Equal(t, int64(4), got.ID)
	assert.Equal(t, "Ann", got.FirstName)
	assert.Equal(t, "Lee", got.LastName)
}

func TestCreateEmployeeValidation(t *testing.T) {
	engine, employees, _ := setup(handler.Responder{})

	resp := handlertest.Do(t, engine, http.MethodPost, "/employee/add",
		map[string]string{"first_name": "   ", "last_name": "Lee"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Message, "first_name")
	employees.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
}

func TestUpdateEmployee(t *testing.T) {
	engine, employees, _ := setup(handler.Responder{})
	employees.On("UpdateEmployee", mock.Anything, mock.MatchedBy(func(e *model.Employee) bool {
		return e.ID == 2 && e.FirstName == "Bo"
	})).Return(nil)

	resp := handlertest.Do(t, engine, http.MethodPut, "/employee/2",
		map[string]string{"first_name": "Bo", "last_name": "Kim"})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Employee updated successfully", resp.Message)
}

func TestDeleteEmployee(t *testing.T) {
	engine, employees, _ := setup(handler.Responder{})
	employees.On("DeleteEmployee", mock.Anything, int64(2)).Return(nil)

	resp := handlertest.Do(t, engine, http.MethodDelete, "/employee/2", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Employee deleted successfully", resp.Message)
}

func TestSelectEmployee(t *testing.T) {
	engine, employees, _ := setup(handler.Responder{})
	employees.On("SelectActing", mock.Anything, "ann", "lee").Return(&model.SelectEmployeeResponse{
		Employee: &model.Employee{ID: 1, FirstName: "Ann", LastName: "Lee"},
		Token:    "signed",
	}, nil)

	resp := handlertest.Do(t, engine, http.MethodPost, "/employee/select",
		map[string]string{"first_name": "ann", "last_name": "lee"})

	require.Equal(t, http.StatusOK, resp.Code)
	var got model.SelectEmployeeResponse
	resp.DecodeData(t, &got)
	assert.Equal(t, "signed", got.Token)
}

func TestListEmployeeMessagesUnknownEmployee(t *testing.T) {
	engine, _, messages := setup(handler.Responder{})
	messages.On("ListByEmployee", mock.Anything, int64(7)).Return(nil, apperrors.NotFound("Employee", nil))

	resp := handlertest.Do(t, engine, http.MethodGet, "/employee/7/messages", nil)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
