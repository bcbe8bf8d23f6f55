package service

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/zivilschutz/schutzraum-api/internal/domain/geo"
	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
	apperrors "github.com/zivilschutz/schutzraum-api/internal/errors"
)

// GeoService provides the portal's geo helpers. Geocoding is mocked
// deterministically from the address text; routing is a straight-line
// estimate at walking speed. A real deployment would swap in a
// geocoding provider behind the same surface.
type GeoService struct{}

// NewGeoService constructs a new GeoService.
func NewGeoService() *GeoService {
	return &GeoService{}
}

// Center of Germany; mock geocoding scatters around it.
const (
	germanyCenterLat = 51.1657
	germanyCenterLng = 10.4515
)

// Geocode derives coordinates from an address string. The same address
// always maps to the same position near the center of Germany.
func (s *GeoService) Geocode(_ context.Context, address string) (model.Coordinates, error) {
	if address == "" {
		return model.Coordinates{}, apperrors.Validation("address is required", "address")
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(address))
	sum := h.Sum64()

	// Spread the hash over roughly +-1 degree in each axis.
	latOffset := float64(sum&0xffff)/0xffff*2 - 1
	lngOffset := float64((sum>>16)&0xffff)/0xffff*2 - 1

	return model.Coordinates{
		Lat: germanyCenterLat + latOffset,
		Lng: germanyCenterLng + lngOffset,
	}, nil
}

// ReverseGeocode renders a placeholder address for a position.
func (s *GeoService) ReverseGeocode(_ context.Context, lat, lng float64) (string, error) {
	return fmt.Sprintf("Simulierte Adresse (%.4f, %.4f)", lat, lng), nil
}

// Route is a walking route estimate between two positions.
type Route struct {
	DistanceM    int                 `json:"distance_m"`
	DurationMins int                 `json:"duration_mins"`
	Polyline     []model.Coordinates `json:"polyline"`
}

// GetRoute estimates a walking route as a straight line with a single
// midpoint, matching the demo map rendering.
func (s *GeoService) GetRoute(_ context.Context, fromLat, fromLng, toLat, toLng float64) (Route, error) {
	distance := geo.DistanceM(fromLat, fromLng, toLat, toLng)
	return Route{
		DistanceM:    int(distance + 0.5),
		DurationMins: geo.WalkingMinutes(distance),
		Polyline: []model.Coordinates{
			{Lat: fromLat, Lng: fromLng},
			{Lat: (fromLat + toLat) / 2, Lng: (fromLng + toLng) / 2},
			{Lat: toLat, Lng: toLng},
		},
	}, nil
}
