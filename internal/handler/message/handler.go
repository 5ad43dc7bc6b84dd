package message

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/staff-directory/internal/handler"
	"github.com/jwalitptl/staff-directory/internal/model"
	messageService "github.com/jwalitptl/staff-directory/internal/service/message"
)

type Handler struct {
	service messageService.MessageServicer
	resp    handler.Responder
}

func NewHandler(service messageService.MessageServicer, resp handler.Responder) *Handler {
	return &Handler{service: service, resp: resp}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	messages := r.Group("/messages")
	{
		messages.GET("", h.ListMessages)
		messages.POST("/add", h.CreateMessage)
		messages.GET("/:id", h.GetMessage)
		messages.PUT("/:id", h.UpdateMessage)
		messages.DELETE("/:id", h.DeleteMessage)
	}
}

func (h *Handler) ListMessages(c *gin.Context) {
	messages, err := h.service.ListMessages(c.Request.Context())
	if err != nil {
		h.resp.Fail(c, err, "Failed to fetch messages")
		return
	}
	h.resp.OK(c, messages)
}

func (h *Handler) GetMessage(c *gin.Context) {
	id, ok := h.resp.ParseID(c, "id")
	if !ok {
		return
	}

	message, err := h.service.GetMessage(c.Request.Context(), id)
	if err != nil {
		h.resp.Fail(c, err, "Failed to fetch message")
		return
	}
	h.resp.OK(c, message)
}

// CreateMessage stores the post; notifying the other employees happens in the
// service hooks and never changes this response.
func (h *Handler) CreateMessage(c *gin.Context) {
	var req model.CreateMessageRequest
	if !h.resp.BindJSON(c, &req) {
		return
	}

	message := &model.Message{
		EmployeeID:  req.EmployeeID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.service.CreateMessage(c.Request.Context(), message); err != nil {
		h.resp.Fail(c, err, "Failed to create message")
		return
	}
	h.resp.Created(c, "Message created successfully", message)
}

func (h *Handler) UpdateMessage(c *gin.Context) {
	id, ok := h.resp.ParseID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateMessageRequest
	if !h.resp.BindJSON(c, &req) {
		return
	}

	message := &model.Message{ID: id, Title: req.Title, Description: req.Description}
	if err := h.service.UpdateMessage(c.Request.Context(), message); err != nil {
		h.resp.Fail(c, err, "Failed to update message")
		return
	}
	h.resp.Message(c, "Message updated successfully", message)
}

func (h *Handler) DeleteMessage(c *gin.Context) {
	id, ok := h.resp.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteMessage(c.Request.Context(), id); err != nil {
		h.resp.Fail(c, err, "Failed to delete message")
		return
	}
	h.resp.Message(c, "Message deleted successfully", nil)
}
