package handler

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/service"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	notifications service.NotificationService
	logger        *zap.Logger
}

func NewNotificationHandler(notifications service.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, logger: logger}
}

type notificationsResponse struct {
	Notifications []entity.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.notifications.List(r.Context())
	if err != nil {
		writeError(w, h.logger, "ListNotifications", err)
		return
	}
	unread, err := h.notifications.UnreadCount(r.Context())
	if err != nil {
		writeError(w, h.logger, "ListNotifications", err)
		return
	}
	writeJSON(w, http.StatusOK, notificationsResponse{Notifications: list, Unread: unread})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "MarkRead", err)
		return
	}
	n, err := h.notifications.MarkRead(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, "MarkRead", err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	marked, err := h.notifications.MarkAllRead(r.Context())
	if err != nil {
		writeError(w, h.logger, "MarkAllRead", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"marked": marked})
}
