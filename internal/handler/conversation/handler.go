package conversation

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/staff-directory/internal/handler"
	"github.com/jwalitptl/staff-directory/internal/model"
	conversationService "github.com/jwalitptl/staff-directory/internal/service/conversation"
)

type Handler struct {
	service conversationService.ConversationServicer
	resp    handler.Responder
}

func NewHandler(service conversationService.ConversationServicer, resp handler.Responder) *Handler {
	return &Handler{service: service, resp: resp}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	umessages := r.Group("/umessages")
	{
		umessages.POST("/send", h.SendMessage)
		umessages.GET("/latest/:employeeId", h.GetLatestConversations)
		umessages.GET("/:employeeId/:otherEmployeeId", h.GetConversation)
	}
}

func (h *Handler) GetConversation(c *gin.Context) {
	employeeID, ok := h.resp.ParseID(c, "employeeId")
	if !ok {
		return
	}
	otherEmployeeID, ok := h.resp.ParseID(c, "otherEmployeeId")
	if !ok {
		return
	}

	messages, err := h.service.GetConversation(c.Request.Context(), employeeID, otherEmployeeID)
	if err != nil {
		h.resp.Fail(c, err, "Failed to fetch messages")
		return
	}
	h.resp.OK(c, messages)
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req model.SendDirectMessageRequest
	if !h.resp.BindJSON(c, &req) {
		return
	}

	message, err := h.service.SendMessage(c.Request.Context(), req.SenderID, req.ReceiverID, req.Message)
	if err != nil {
		h.resp.Fail(c, err, "Failed to send message")
		return
	}
	h.resp.Created(c, "Message sent successfully", message)
}

func (h *Handler) GetLatestConversations(c *gin.Context) {
	employeeID, ok := h.resp.ParseID(c, "employeeId")
	if !ok {
		return
	}

	conversations, err := h.service.GetLatestConversations(c.Request.Context(), employeeID)
	if err != nil {
		h.resp.Fail(c, err, "Failed to fetch conversations")
		return
	}
	h.resp.OK(c, conversations)
}
