package model

import (
	"testing"
	"time"
)

func testShelter() *Shelter {
	return &Shelter{
		ID:       "shelter-berlin-001",
		Name:     "Bunker Gesundbrunnen",
		Type:     ShelterTypeBunker,
		Status:   ShelterStatusActive,
		Capacity: 1300,
		Address:  Address{Street: "Brunnenstraße 105", City: "Berlin", PostalCode: "13355", State: "Berlin"},
		Accessibility: Accessibility{
			Wheelchair: true,
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestShelterFilters_Matches(t *testing.T) {
	s := testShelter()

	cases := []struct {
		name    string
		filters ShelterFilters
		want    bool
	}{
		{"empty filters match everything", ShelterFilters{}, true},
		{"type match", ShelterFilters{Types: []ShelterType{ShelterTypeBunker}}, true},
		{"type mismatch", ShelterFilters{Types: []ShelterType{ShelterTypeSubway}}, false},
		{"status match", ShelterFilters{Statuses: []ShelterStatus{ShelterStatusActive, ShelterStatusLimited}}, true},
		{"status mismatch", ShelterFilters{Statuses: []ShelterStatus{ShelterStatusPlanned}}, false},
		{"capacity at threshold", ShelterFilters{MinCapacity: 1300}, true},
		{"capacity above threshold", ShelterFilters{MinCapacity: 1301}, false},
		{"state match", ShelterFilters{States: []string{"Berlin"}}, true},
		{"state mismatch", ShelterFilters{States: []string{"Bayern"}}, false},
		{"wheelchair required and present", ShelterFilters{Wheelchair: true}, true},
		{"elevator required but missing", ShelterFilters{Elevator: true}, false},
		{"combined", ShelterFilters{Types: []ShelterType{ShelterTypeBunker}, MinCapacity: 1000, States: []string{"Berlin"}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filters.Matches(s); got != tc.want {
				t.Fatalf("Matches() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCreateShelterRequest_Validate(t *testing.T) {
	valid := CreateShelterRequest{
		Name:     "Neuer Schutzraum Friedrichshain",
		Type:     ShelterTypeBasement,
		Capacity: 150,
		Address:  Address{City: "Berlin", State: "Berlin"},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	missingName := valid
	missingName.Name = "  "
	if err := missingName.Validate(); err == nil {
		t.Fatalf("expected error for blank name")
	}

	badType := valid
	badType.Type = "cave"
	if err := badType.Validate(); err == nil {
		t.Fatalf("expected error for invalid type")
	}

	badCapacity := valid
	badCapacity.Capacity = 0
	if err := badCapacity.Validate(); err == nil {
		t.Fatalf("expected error for non-positive capacity")
	}
}

func TestIsGermanState(t *testing.T) {
	if !IsGermanState("Nordrhein-Westfalen") {
		t.Fatalf("expected NRW to be a state")
	}
	if IsGermanState("Atlantis") {
		t.Fatalf("Atlantis is not a federal state")
	}
}
