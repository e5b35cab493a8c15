package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
	"github.com/mercury-msp/helpdesk/internal/core/ports"
)

// NotificationHandler exposes per-user notification inboxes. Cross-user
// operations (broadcast creation, listing another user's inbox) are gated to
// administrators at the routing layer.
type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

type createNotificationRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"omitempty,oneof=user admin"`
}

// List returns the caller's inbox. Admins may pass user_id to inspect another
// user's notifications.
func (h *NotificationHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	filter := ports.NotificationFilter{
		UserID:     user.ID,
		Audience:   domain.NotificationAudience(c.QueryParam("type")),
		UnreadOnly: c.QueryParam("unread") == "true",
	}
	if user.Role == domain.RoleAdmin {
		if target := c.QueryParam("user_id"); target != "" {
			filter.UserID = target
		}
	}

	notifications, err := h.notificationService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) Create(c echo.Context) error {
	var req createNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	n, err := h.notificationService.Create(c.Request().Context(), ports.NotificationInput{
		UserID:   req.UserID,
		Title:    req.Title,
		Message:  req.Message,
		Audience: domain.NotificationAudience(req.Type),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, n)
}

// MarkRead acknowledges a single notification. Users may only acknowledge
// their own; a foreign id reads as not found rather than revealing existence.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	n, err := h.notificationService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if n.UserID != user.ID && user.Role != domain.RoleAdmin {
		return domain.ErrNotificationNotFound
	}

	updated, err := h.notificationService.MarkRead(c.Request().Context(), n.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// MarkAllRead acknowledges every unread notification in the caller's inbox.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.notificationService.MarkAllRead(c.Request().Context(), user.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	n, err := h.notificationService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if n.UserID != user.ID && user.Role != domain.RoleAdmin {
		return domain.ErrNotificationNotFound
	}

	if err := h.notificationService.Delete(c.Request().Context(), n.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
