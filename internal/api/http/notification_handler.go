package http

import (
	"net/http"

	"evrental-backend/internal/service"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// List returns the authenticated user's notifications, newest first.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing credentials")
		return
	}
	q := r.URL.Query()
	page, pageSize := pagination(q.Get("page"), q.Get("page_size"))

	notifications, count, err := h.notificationSvc.GetNotifications(r.Context(), claims.UserID, page, pageSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"total_count":   count,
	})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing credentials")
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	if err := h.notificationSvc.MarkAsRead(r.Context(), claims.UserID, id); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeMessage(w, "Notification marked as read")
}
