package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/zivilschutz/schutzraum-api/internal/service"
)

// GeoHandlers provides HTTP handlers for geocoding and routing.
type GeoHandlers struct {
	Svc *service.GeoService
}

// Geocode resolves an address to coordinates.
// GET /api/geo/geocode?address=<address>.
func (h *GeoHandlers) Geocode(w http.ResponseWriter, r *http.Request) {
	coords, err := h.Svc.Geocode(r.Context(), r.URL.Query().Get("address"))
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, coords)
}

// ReverseGeocode resolves coordinates to an address string.
// GET /api/geo/reverse?lat=<lat>&lng=<lng>.
func (h *GeoHandlers) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	lat, lng, ok := queryPosition(w, r, "lat", "lng")
	if !ok {
		return
	}

	address, err := h.Svc.ReverseGeocode(r.Context(), lat, lng)
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"address": address})
}

// Route estimates a walking route between two positions.
// GET /api/geo/route?from_lat=..&from_lng=..&to_lat=..&to_lng=..
func (h *GeoHandlers) Route(w http.ResponseWriter, r *http.Request) {
	fromLat, fromLng, ok := queryPosition(w, r, "from_lat", "from_lng")
	if !ok {
		return
	}
	toLat, toLng, ok := queryPosition(w, r, "to_lat", "to_lng")
	if !ok {
		return
	}

	route, err := h.Svc.GetRoute(r.Context(), fromLat, fromLng, toLat, toLng)
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, route)
}

// queryPosition parses a lat/lng pair from query parameters, writing a
// 400 when either is missing or not a number.
func queryPosition(w http.ResponseWriter, r *http.Request, latName, lngName string) (float64, float64, bool) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get(latName), 64)
	lng, lngErr := strconv.ParseFloat(r.URL.Query().Get(lngName), 64)
	if latErr != nil || lngErr != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_position",
			Err:     errors.New(latName + " and " + lngName + " query parameters are required"),
		})
		return 0, 0, false
	}
	return lat, lng, true
}
