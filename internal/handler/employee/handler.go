package employee

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/staff-directory/internal/handler"
	"github.com/jwalitptl/staff-directory/internal/model"
	employeeService "github.com/jwalitptl/staff-directory/internal/service/employee"
	messageService "github.com/jwalitptl/staff-directory/internal/service/message"
)

type Handler struct {
	service  employeeService.EmployeeServicer
	messages messageService.MessageServicer
	resp     handler.Responder
}

func NewHandler(service employeeService.EmployeeServicer, messages messageService.MessageServicer, resp handler.Responder) *Handler {
	return &Handler{service: service, messages: messages, resp: resp}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/employees", h.ListEmployees)

	employees := r.Group("/employee")
	{
		employees.POST("/add", h.CreateEmployee)
		employees.POST("/select", h.SelectEmployee)
		employees.GET("/:id", h.GetEmployee)
		employees.PUT("/:id", h.UpdateEmployee)
		employees.DELETE("/:id", h.DeleteEmployee)
		employees.GET("/:id/messages", h.ListEmployeeMessages)
	}
}

func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.service.ListEmployees(c.Request.Context())
	if err != nil {
		h.resp.Fail(c, err, "Failed to fetch employees")
		return
	}
	h.resp.OK(c, employees)
}

func (h *Handler) GetEmployee(c *gin.Context) {
	id, ok := h.resp.ParseID(c, "id")
	if !ok {
		return
	}

	employee, err := h.service.GetEmployee(c.Request.Context(), id)
	if err != nil {
		h.resp.Fail(c, err, "Failed to fetch employee")
		return
	}
	h.resp.OK(c, employee)
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var req model.CreateEmployeeRequest
	if !h.resp.BindJSON(c, &req) {
		return
	}

	employee := &model.Employee{FirstName: req.FirstName, LastName: req.LastName}
	if err := h.service.CreateEmployee(c.Request.Context(), employee); err != nil {
		h.resp.Fail(c, err, "Failed to create employee")
		return
	}
	h.resp.Created(c, "Employee created successfully", employee)
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	id, ok := h.resp.ParseID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateEmployeeRequest
	if !h.resp.BindJSON(c, &req) {
		return
	}

	employee := &model.Employee{ID: id, FirstName: req.FirstName, LastName: req.LastName}
	if err := h.service.UpdateEmployee(c.Request.Context(), employee); err != nil {
		h.resp.Fail(c, err, "Failed to update employee")
		return
	}
	h.resp.Message(c, "Employee updated successfully", employee)
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	id, ok := h.resp.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteEmployee(c.Request.Context(), id); err != nil {
		h.resp.Fail(c, err, "Failed to delete employee")
		return
	}
	h.resp.Message(c, "Employee deleted successfully", nil)
}

// SelectEmployee picks the acting employee by name and returns a token naming them.
func (h *Handler) SelectEmployee(c *gin.Context) {
	var req model.SelectEmployeeRequest
	if !h.resp.BindJSON(c, &req) {
		return
	}

	selected, err := h.service.SelectActing(c.Request.Context(), req.FirstName, req.LastName)
	if err != nil {
		h.resp.Fail(c, err, "Failed to select employee")
		return
	}
	h.resp.OK(c, selected)
}

func (h *Handler) ListEmployeeMessages(c *gin.Context) {
	id, ok := h.resp.ParseID(c, "id")
	if !ok {
		return
	}

	messages, err := h.messages.ListByEmployee(c.Request.Context(), id)
	if err != nil {
		h.resp.Fail(c, err, "Failed to fetch employee messages")
		return
	}
	h.resp.OK(c, messages)
}
