package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/jwalitptl/staff-directory/pkg/errors"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"

	// ContextActingEmployeeID holds the employee id taken from an acting-employee token.
	ContextActingEmployeeID = "acting_employee_id"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: StatusSuccess,
		Data:   data,
	}
}

func NewMessageResponse(message string, data interface{}) *Response {
	return &Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  StatusError,
		Message: message,
	}
}

// Responder writes the response envelope. ExposeErrors adds raw error text
// to error responses and should stay off outside development.
type Responder struct {
	ExposeErrors bool
}

func (r Responder) OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, NewSuccessResponse(data))
}

func (r Responder) Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, NewMessageResponse(message, data))
}

func (r Responder) Message(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, NewMessageResponse(message, data))
}

// Fail maps err onto a status code. Application errors below 500 carry their own
// message; everything else answers with fallback.
func (r Responder) Fail(c *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	message := fallback
	if appErr, ok := apperrors.As(err); ok {
		status = appErr.StatusCode()
		if status < http.StatusInternalServerError {
			message = appErr.Message
		}
	}

	resp := NewErrorResponse(message)
	if r.ExposeErrors && err != nil {
		resp.Error = err.Error()
	}
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, resp)
}

// BindJSON decodes the body into req and answers 400 when it does not validate.
func (r Responder) BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		r.Fail(c, apperrors.BadRequest(ValidationMessage(err), err), "")
		return false
	}
	return true
}

// ParseID reads a positive integer path parameter.
func (r Responder) ParseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		r.Fail(c, apperrors.BadRequest(fmt.Sprintf("invalid %s", param), err), "")
		return 0, false
	}
	return id, true
}

// ActingEmployeeID returns the employee selected through an acting-employee token, if any.
func ActingEmployeeID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextActingEmployeeID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}

// ValidationMessage turns binding errors into a short human readable sentence.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fieldMessage(fe))
	}
	return strings.Join(parts, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
