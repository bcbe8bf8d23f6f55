package httpx

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
	"github.com/zivilschutz/schutzraum-api/internal/service"
)

// ShelterHandlers provides HTTP handlers for the shelter catalog.
type ShelterHandlers struct {
	Svc *service.ShelterService
}

// List returns a filtered, paginated shelter listing.
// GET /api/shelters?type=...&status=...&state=...&min_capacity=...&page=...&page_size=...
func (h *ShelterHandlers) List(w http.ResponseWriter, r *http.Request) {
	filters, err := parseShelterFilters(r)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_filter", Err: err})
		return
	}
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "page_size", 0)

	result, err := h.Svc.List(r.Context(), filters, page, pageSize)
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// Get returns a single shelter.
// GET /api/shelters/{id}.
func (h *ShelterHandlers) Get(w http.ResponseWriter, r *http.Request) {
	shelter, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, shelter)
}

// Search matches shelters by name, city, or street.
// GET /api/shelters/search?q=<query>.
func (h *ShelterHandlers) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.Svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		RenderAppError(w, err)
		return
	}
	if results == nil {
		results = []*model.Shelter{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"data": results})
}

// Nearest returns the closest active shelters to a position.
// GET /api/shelters/nearest?lat=<lat>&lng=<lng>&limit=<n>.
func (h *ShelterHandlers) Nearest(w http.ResponseWriter, r *http.Request) {
	lat, lng, ok := queryPosition(w, r, "lat", "lng")
	if !ok {
		return
	}

	results, err := h.Svc.Nearest(r.Context(), lat, lng, queryInt(r, "limit", 0))
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"data": results})
}

// MyShelters returns the shelters assigned to the signed-in operator.
// GET /api/operator/shelters.
func (h *ShelterHandlers) MyShelters(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	shelters, err := h.Svc.ListForOperator(r.Context(), session.UserID)
	if err != nil {
		RenderAppError(w, err)
		return
	}
	if shelters == nil {
		shelters = []*model.Shelter{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"data": shelters})
}

// Pending returns shelters waiting for administrative approval.
// GET /api/shelters/pending.
func (h *ShelterHandlers) Pending(w http.ResponseWriter, r *http.Request) {
	shelters, err := h.Svc.PendingApprovals(r.Context())
	if err != nil {
		RenderAppError(w, err)
		return
	}
	if shelters == nil {
		shelters = []*model.Shelter{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"data": shelters})
}

// Create registers a new shelter.
// POST /api/shelters.
func (h *ShelterHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateShelterRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	shelter, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, shelter)
}

// Update applies a partial shelter update.
// PUT /api/shelters/{id}.
func (h *ShelterHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateShelterRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	shelter, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, shelter)
}

// Approve marks a pending shelter as approved.
// POST /api/shelters/{id}/approve.
func (h *ShelterHandlers) Approve(w http.ResponseWriter, r *http.Request) {
	shelter, err := h.Svc.Approve(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, shelter)
}

// Reject marks a pending shelter as rejected.
// POST /api/shelters/{id}/reject.
func (h *ShelterHandlers) Reject(w http.ResponseWriter, r *http.Request) {
	shelter, err := h.Svc.Reject(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, shelter)
}

// parseShelterFilters builds repository filters from query parameters.
// Unknown enum values are rejected so typos do not silently return the
// full catalog.
func parseShelterFilters(r *http.Request) (model.ShelterFilters, error) {
	q := r.URL.Query()
	var filters model.ShelterFilters

	for _, raw := range splitCSV(q.Get("type")) {
		t := model.ShelterType(raw)
		if !t.Valid() {
			return model.ShelterFilters{}, errors.New("unknown shelter type: " + raw)
		}
		filters.Types = append(filters.Types, t)
	}
	for _, raw := range splitCSV(q.Get("status")) {
		s := model.ShelterStatus(raw)
		if !s.Valid() {
			return model.ShelterFilters{}, errors.New("unknown shelter status: " + raw)
		}
		filters.Statuses = append(filters.Statuses, s)
	}
	filters.States = splitCSV(q.Get("state"))

	if raw := q.Get("min_capacity"); raw != "" {
		minCapacity, err := strconv.Atoi(raw)
		if err != nil || minCapacity < 0 {
			return model.ShelterFilters{}, errors.New("min_capacity must be a non-negative integer")
		}
		filters.MinCapacity = minCapacity
	}

	filters.Wheelchair = q.Get("wheelchair") == "true"
	filters.Elevator = q.Get("elevator") == "true"
	filters.GroundLevel = q.Get("ground_level") == "true"
	return filters, nil
}

// splitCSV splits a comma-separated query value, dropping empty entries.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// queryInt reads an integer query parameter, falling back on absence or
// garbage.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
