package httpx

import (
	"errors"
	"net/http"

	"github.com/zivilschutz/schutzraum-api/internal/service"
)

// CrisisHandlers provides HTTP handlers for crisis mode. Status is
// public (the portal banner polls it); the mutating routes are gated in
// the route table to the crisis allow-list.
type CrisisHandlers struct {
	Svc *service.CrisisService
}

// Status returns the current crisis state.
// GET /api/crisis/status.
func (h *CrisisHandlers) Status(w http.ResponseWriter, r *http.Request) {
	state, err := h.Svc.Status(r.Context())
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, state)
}

// activateRequest is the body of the crisis activation endpoint.
type activateRequest struct {
	Regions []string `json:"regions"`
}

// Activate turns crisis mode on for the given regions.
// POST /api/crisis/activate.
func (h *CrisisHandlers) Activate(w http.ResponseWriter, r *http.Request) {
	var req activateRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	actor, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	state, err := h.Svc.Activate(r.Context(), actor.UserID, req.Regions)
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, state)
}

// Deactivate turns crisis mode off.
// POST /api/crisis/deactivate.
func (h *CrisisHandlers) Deactivate(w http.ResponseWriter, r *http.Request) {
	state, err := h.Svc.Deactivate(r.Context())
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, state)
}

// broadcastRequest is the body of the crisis broadcast endpoint.
type broadcastRequest struct {
	Message string   `json:"message"`
	Regions []string `json:"regions,omitempty"`
}

// Broadcast sends a crisis message.
// POST /api/crisis/broadcast.
func (h *CrisisHandlers) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req broadcastRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	actor, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	broadcast, err := h.Svc.Broadcast(r.Context(), actor.UserID, req.Message, req.Regions)
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, broadcast)
}

func writeMissingSession(w http.ResponseWriter) {
	WriteError(w, ErrorParams{
		Code:    http.StatusUnauthorized,
		ErrCode: "authentication_required",
		Err:     errors.New("authentication required"),
	})
}
