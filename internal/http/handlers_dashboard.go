package httpx

import (
	"net/http"

	"github.com/zivilschutz/schutzraum-api/internal/service"
)

// DashboardHandlers provides HTTP handlers for the admin dashboards.
type DashboardHandlers struct {
	Svc *service.DashboardService
}

// Stats aggregates the whole inventory.
// GET /api/dashboard/stats.
func (h *DashboardHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats(r.Context())
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

// StatsByState aggregates the inventory of a single federal state.
// GET /api/dashboard/stats/{state}.
func (h *DashboardHandlers) StatsByState(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.StatsByState(r.Context(), r.PathValue("state"))
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

// Regional returns per-state shelter counts and capacity.
// GET /api/dashboard/regional.
func (h *DashboardHandlers) Regional(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.Svc.RegionalBreakdown(r.Context())
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"data": breakdown})
}
