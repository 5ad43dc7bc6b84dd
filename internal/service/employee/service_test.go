package employee

import (
	"context"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/staff-directory/internal/model"
	"github.com/jwalitptl/staff-directory/internal/repository"
	"github.com/jwalitptl/staff-directory/internal/repository/mocks"
	"github.com/jwalitptl/staff-directory/pkg/auth"
	apperrors "github.com/jwalitptl/staff-directory/pkg/errors"
	"github.com/jwalitptl/staff-directory/pkg/logger"
)

func newTestService(repo *mocks.EmployeeRepository) *Service {
	return NewService(repo, cache.New(time.Minute, time.Minute), auth.NewTokenService("secret", time.Hour), logger.NewNop())
}

func TestGetEmployeeUsesCache(t *testing.T) {
	repo := new(mocks.EmployeeRepository)
	repo.On("Get", mock.Anything, int64(1)).
		Return(&model.Employee{ID: 1, FirstName: "Ann", LastName: "Lee"}, nil).Once()
	svc := newTestService(repo)

	first, err := svc.GetEmployee(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.GetEmployee(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertExpectations(t)
}

func TestGetEmployeeNotFound(t *testing.T) {
	repo := new(mocks.EmployeeRepository)
	repo.On("Get", mock.Anything, int64(9)).Return(nil, repository.ErrNotFound)
	svc := newTestService(repo)

	_, err := svc.GetEmployee(context.Background(), 9)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestUpdateEmployeeInvalidatesCache(t *testing.T) {
	repo := new(mocks.EmployeeRepository)
	repo.On("Get", mock.Anything, int64(1)).
		Return(&model.Employee{ID: 1, FirstName: "Ann", LastName: "Lee"}, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Employee")).Return(nil)
	repo.On("Get", mock.Anything, int64(1)).
		Return(&model.Employee{ID: 1, FirstName: "Anne", LastName: "Lee"}, nil).Once()
	svc := newTestService(repo)

	_, err := svc.GetEmployee(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateEmployee(context.Background(), &model.Employee{ID: 1, FirstName: "Anne", LastName: "Lee"}))

	updated, err := svc.GetEmployee(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Anne", updated.FirstName)
	repo.AssertExpectations(t)
}

func TestCreateEmployeeRejectsBlankNames(t *testing.T) {
	svc := newTestService(new(mocks.EmployeeRepository))

	err := svc.CreateEmployee(context.Background(), &model.Employee{FirstName: "  ", LastName: "Lee"})
	assert.True(t, apperrors.Is(err, apperrors.ErrBadRequest))
}

func TestCreateEmployeeKeepsFieldsAsGiven(t *testing.T) {
	repo := new(mocks.EmployeeRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.Employee) bool {
		return e.FirstName == "Ann" && e.LastName == "Lee"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Employee).ID = 1
	}).Return(nil)
	svc := newTestService(repo)

	employee := &model.Employee{FirstName: "Ann", LastName: "Lee"}
	require.NoError(t, svc.CreateEmployee(context.Background(), employee))
	assert.Equal(t, int64(1), employee.ID)
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	repo := new(mocks.EmployeeRepository)
	repo.On("Delete", mock.Anything, int64(4)).Return(repository.ErrNotFound)
	svc := newTestService(repo)

	err := svc.DeleteEmployee(context.Background(), 4)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestSelectActingIssuesToken(t *testing.T) {
	repo := new(mocks.EmployeeRepository)
	repo.On("FindByName", mock.Anything, "ann", "lee").
		Return(&model.Employee{ID: 1, FirstName: "Ann", LastName: "Lee"}, nil)
	tokens := auth.NewTokenService("secret", time.Hour)
	svc := NewService(repo, nil, tokens, logger.NewNop())

	resp, err := svc.SelectActing(context.Background(), " ann ", "lee")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Employee.ID)

	claims, err := tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.EmployeeID)
	assert.Equal(t, "Ann Lee", claims.Name)
}

func TestSelectActingUnknownName(t *testing.T) {
	repo := new(mocks.EmployeeRepository)
	repo.On("FindByName", mock.Anything, "No", "Body").Return(nil, repository.ErrNotFound)
	svc := newTestService(repo)

	_, err := svc.SelectActing(context.Background(), "No", "Body")
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestEmployeeExistsFallsBackToRepository(t *testing.T) {
	repo := new(mocks.EmployeeRepository)
	repo.On("Exists", mock.Anything, int64(2)).Return(true, nil)
	svc := newTestService(repo)

	exists, err := svc.EmployeeExists(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, exists)
}
