package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bigitcorp/taskboard/internal/api/metrics"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// NotificationHandler handles the notification inbox, trash and the due-soon
// check trigger.
type NotificationHandler struct {
	notifs ports.NotificationService
}

func NewNotificationHandler(notifs ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifs: notifs}
}

type createNotificationRequest struct {
	Type     string            `json:"type"    validate:"omitempty,oneof=email reminder system task_due_soon"`
	Subject  string            `json:"subject" validate:"required"`
	Body     string            `json:"body"`
	Metadata map[string]string `json:"metadata"`
}

type unreadCountResponse struct {
	Count int `json:"count"`
}

type readRequest struct {
	Read bool `json:"read"`
}

// List handles GET /v1/notifications (inbox) and its trash variant.
//
// @Summary      List notifications, newest first
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        view  query    string  false  "inbox (default) or trash"
// @Success      200   {array}  domain.Notification
// @Router       /v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	view := c.QueryParam("view")
	if view == "" {
		view = ports.ViewInbox
	}
	notifs, err := h.notifs.List(c.Request().Context(), view)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifs)
}

// Trash handles GET /v1/notifications/trash.
func (h *NotificationHandler) Trash(c echo.Context) error {
	notifs, err := h.notifs.List(c.Request().Context(), ports.ViewTrash)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifs)
}

// UnreadCount handles GET /v1/notifications/unread.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.notifs.UnreadCount(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unreadCountResponse{Count: count})
}

// Create handles POST /v1/notifications.
func (h *NotificationHandler) Create(c echo.Context) error {
	var req createNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	notif, err := h.notifs.Create(c.Request().Context(), req.Type, req.Subject, req.Body, req.Metadata)
	if err != nil {
		return err
	}

	metrics.NotificationsCreatedTotal.WithLabelValues(notif.Type).Inc()
	return c.JSON(http.StatusCreated, notif)
}

// SetRead handles PUT /v1/notifications/:id/read.
func (h *NotificationHandler) SetRead(c echo.Context) error {
	var req readRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	notif, err := h.notifs.SetRead(c.Request().Context(), c.Param("id"), req.Read)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notif)
}

// SoftDelete handles DELETE /v1/notifications/:id — moves to trash. A second
// delete from the trash view is a purge, handled by Purge.
func (h *NotificationHandler) SoftDelete(c echo.Context) error {
	notif, err := h.notifs.SoftDelete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notif)
}

// Restore handles POST /v1/notifications/:id/restore.
func (h *NotificationHandler) Restore(c echo.Context) error {
	notif, err := h.notifs.Restore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notif)
}

// Purge handles DELETE /v1/notifications/:id/purge — permanent removal.
func (h *NotificationHandler) Purge(c echo.Context) error {
	if err := h.notifs.Purge(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CheckDue handles POST /v1/notifications/check-due, the manual trigger for
// the due-soon scan the scheduler also runs.
func (h *NotificationHandler) CheckDue(c echo.Context) error {
	if err := h.notifs.CheckUpcomingDue(c.Request().Context(), time.Now()); err != nil {
		return err
	}
	metrics.DueSoonChecksTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
