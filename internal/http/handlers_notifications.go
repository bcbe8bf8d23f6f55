package httpx

import (
	"errors"
	"net/http"

	domainauth "github.com/zivilschutz/schutzraum-api/internal/domain/auth"
	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
	"github.com/zivilschutz/schutzraum-api/internal/service"
)

// NotificationHandlers provides HTTP handlers for the notification feed.
// All routes require a session; the feed is scoped to the caller's role.
type NotificationHandlers struct {
	Svc *service.NotificationService
}

// sessionRole reads the caller's role off the request context. The
// guard has already run, so a missing session is a wiring mistake.
func sessionRole(w http.ResponseWriter, r *http.Request) (domainauth.Role, bool) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return "", false
	}
	return session.Role, true
}

// List returns the notifications visible to the caller's role.
// GET /api/notifications.
func (h *NotificationHandlers) List(w http.ResponseWriter, r *http.Request) {
	role, ok := sessionRole(w, r)
	if !ok {
		return
	}

	items, err := h.Svc.List(r.Context(), role)
	if err != nil {
		RenderAppError(w, err)
		return
	}
	if items == nil {
		items = []*model.Notification{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"data": items})
}

// UnreadCount returns the caller's unread notification count.
// GET /api/notifications/unread-count.
func (h *NotificationHandlers) UnreadCount(w http.ResponseWriter, r *http.Request) {
	role, ok := sessionRole(w, r)
	if !ok {
		return
	}

	count, err := h.Svc.UnreadCount(r.Context(), role)
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]int{"count": count})
}

// MarkRead marks a single notification as read.
// POST /api/notifications/{id}/read.
func (h *NotificationHandlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.MarkRead(r.Context(), r.PathValue("id")); err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// MarkAllRead marks every notification visible to the caller as read.
// POST /api/notifications/read-all.
func (h *NotificationHandlers) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	role, ok := sessionRole(w, r)
	if !ok {
		return
	}

	if err := h.Svc.MarkAllRead(r.Context(), role); err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
