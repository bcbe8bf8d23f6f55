package httpx

import (
	"net/http"

	"github.com/zivilschutz/schutzraum-api/internal/service"
)

// AnalyticsHandlers provides the admin-only projection query endpoint.
type AnalyticsHandlers struct {
	Svc *service.AnalyticsService
}

// analyticsQueryRequest is the body of the analytics query endpoint.
type analyticsQueryRequest struct {
	Query string `json:"query"`
}

// Query evaluates a JMESPath expression against the shelter dataset.
// POST /api/analytics/query.
func (h *AnalyticsHandlers) Query(w http.ResponseWriter, r *http.Request) {
	var req analyticsQueryRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Query(r.Context(), req.Query)
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"result": result})
}
