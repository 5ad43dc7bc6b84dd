package notification

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/staff-directory/internal/handler"
	"github.com/jwalitptl/staff-directory/internal/model"
	notificationService "github.com/jwalitptl/staff-directory/internal/service/notification"
)

type Handler struct {
	service notificationService.NotificationServicer
	resp    handler.Responder
}

func NewHandler(service notificationService.NotificationServicer, resp handler.Responder) *Handler {
	return &Handler{service: service, resp: resp}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	notifications := r.Group("/notifications")
	{
		notifications.POST("/mark-read", h.MarkAsRead)
		notifications.GET("/new/:employeeId", h.GetNewNotifications)
		notifications.GET("/:employeeId", h.GetEmployeeNotifications)
	}
}

func (h *Handler) GetEmployeeNotifications(c *gin.Context) {
	employeeID, ok := h.resp.ParseID(c, "employeeId")
	if !ok {
		return
	}

	notifications, err := h.service.GetEmployeeNotifications(c.Request.Context(), employeeID)
	if err != nil {
		h.resp.Fail(c, err, "Failed to fetch notifications")
		return
	}
	h.resp.OK(c, notifications)
}

func (h *Handler) GetNewNotifications(c *gin.Context) {
	employeeID, ok := h.resp.ParseID(c, "employeeId")
	if !ok {
		return
	}

	notifications, err := h.service.GetNewNotifications(c.Request.Context(), employeeID, c.Query("since"))
	if err != nil {
		h.resp.Fail(c, err, "Failed to fetch new notifications")
		return
	}
	h.resp.OK(c, notifications)
}

// MarkAsRead falls back to the acting employee when the body has no employee_id.
func (h *Handler) MarkAsRead(c *gin.Context) {
	var req model.MarkReadRequest
	if !h.resp.BindJSON(c, &req) {
		return
	}

	employeeID := req.EmployeeID
	if employeeID == 0 {
		employeeID, _ = handler.ActingEmployeeID(c)
	}

	result, err := h.service.MarkAsRead(c.Request.Context(), employeeID, req.All, req.NotificationIDs)
	if err != nil {
		h.resp.Fail(c, err, "Failed to mark notifications as read")
		return
	}
	h.resp.Message(c, "Notifications marked as read", result)
}
