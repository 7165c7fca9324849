package handlers

import (
	"net/http"
	"strconv"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/services"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// RegisterNotificationRoutes registers notification-related routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.ListNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/read-all", h.MarkAllRead)
	g.PUT("/notifications/:id/read", h.MarkRead)
	g.DELETE("/notifications/:id", h.DeleteNotification)
}

func notificationID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid notification ID")
	}
	return uint(id), nil
}

// ListNotifications returns the viewer's notifications newest first. Pass
// unread=true to restrict the page to unread entries; the unread count in the
// envelope always spans the full set.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID := getUserIDFromContext(c)
	page, limit := pageParams(c)
	unreadOnly := c.QueryParam("unread") == "true"

	result, err := h.notificationService.List(userID, page, limit, unreadOnly)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetUnreadCount returns the viewer's unread notification count.
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	count, err := h.notificationService.UnreadCount(getUserIDFromContext(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"unread_count": count})
}

// MarkRead marks one of the viewer's notifications as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := notificationID(c)
	if err != nil {
		return err
	}
	if err := h.notificationService.MarkRead(getUserIDFromContext(c), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Notification marked as read"})
}

// MarkAllRead marks every notification of the viewer as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.notificationService.MarkAllRead(getUserIDFromContext(c)); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "All notifications marked as read"})
}

// DeleteNotification removes one of the viewer's notifications.
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	id, err := notificationID(c)
	if err != nil {
		return err
	}
	if err := h.notificationService.Delete(getUserIDFromContext(c), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Notification deleted"})
}
