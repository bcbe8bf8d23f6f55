// Package testutil provides testing utilities and helpers for the schutzraum portal.
package testutil

import (
	"time"

	"github.com/zivilschutz/schutzraum-api/internal/domain/auth"
	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
)

// ShelterBuilder provides a fluent interface for building Shelter records for testing.
type ShelterBuilder struct {
	s *model.Shelter
}

// NewShelter creates a ShelterBuilder with sensible defaults: an active,
// approved Berlin bunker.
func NewShelter(id string) *ShelterBuilder {
	now := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	return &ShelterBuilder{
		s: &model.Shelter{
			ID:              id,
			Name:            "Bunker " + id,
			Type:            model.ShelterTypeBunker,
			Status:          model.ShelterStatusActive,
			Capacity:        500,
			ProtectionLevel: model.ProtectionBasic,
			Address: model.Address{
				Street:     "Brunnenstraße 105",
				City:       "Berlin",
				PostalCode: "13355",
				State:      "Berlin",
			},
			Coordinates:    model.Coordinates{Lat: 52.5486, Lng: 13.3884},
			ApprovalStatus: model.ApprovalApproved,
			Condition: model.Condition{
				Structural:     model.ConditionGood,
				Technical:      model.ConditionGood,
				LastInspection: now.AddDate(0, -6, 0),
				NextInspection: now.AddDate(0, 6, 0),
			},
			Operator:  model.Operator{Type: model.OperatorPublic, Name: "Stadt Berlin", Contact: "schutz@berlin.de"},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithName sets the shelter name.
func (b *ShelterBuilder) WithName(name string) *ShelterBuilder {
	b.s.Name = name
	return b
}

// WithType sets the shelter type.
func (b *ShelterBuilder) WithType(t model.ShelterType) *ShelterBuilder {
	b.s.Type = t
	return b
}

// WithStatus sets the operational status.
func (b *ShelterBuilder) WithStatus(status model.ShelterStatus) *ShelterBuilder {
	b.s.Status = status
	return b
}

// WithCapacity sets the capacity.
func (b *ShelterBuilder) WithCapacity(capacity int) *ShelterBuilder {
	b.s.Capacity = capacity
	return b
}

// WithState sets the federal state of the address.
func (b *ShelterBuilder) WithState(state string) *ShelterBuilder {
	b.s.Address.State = state
	return b
}

// WithCity sets the address city.
func (b *ShelterBuilder) WithCity(city string) *ShelterBuilder {
	b.s.Address.City = city
	return b
}

// WithCoordinates sets the position.
func (b *ShelterBuilder) WithCoordinates(lat, lng float64) *ShelterBuilder {
	b.s.Coordinates = model.Coordinates{Lat: lat, Lng: lng}
	return b
}

// WithApproval sets the approval status.
func (b *ShelterBuilder) WithApproval(status model.ApprovalStatus) *ShelterBuilder {
	b.s.ApprovalStatus = status
	return b
}

// WithNextInspection sets the next inspection date.
func (b *ShelterBuilder) WithNextInspection(t time.Time) *ShelterBuilder {
	b.s.Condition.NextInspection = t
	return b
}

// WithAssignedOperator sets the operator user ID responsible for the shelter.
func (b *ShelterBuilder) WithAssignedOperator(userID string) *ShelterBuilder {
	b.s.AssignedOperatorID = userID
	return b
}

// Build returns the shelter.
func (b *ShelterBuilder) Build() *model.Shelter {
	return b.s
}

// Identity returns a test identity with the given role.
func Identity(role auth.Role) *auth.Identity {
	return &auth.Identity{
		ID:    "test-" + string(role),
		Name:  "Test " + string(role),
		Email: string(role) + "@demo.de",
		Role:  role,
	}
}

// Session returns a valid test session for the given role, expiring in
// one hour.
func Session(id string, role auth.Role) auth.Session {
	return auth.Session{
		ID:        id,
		UserID:    "test-" + string(role),
		Name:      "Test " + string(role),
		Email:     string(role) + "@demo.de",
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}
