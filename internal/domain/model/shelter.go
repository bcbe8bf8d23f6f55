package model

import (
	"errors"
	"strings"
	"time"
)

// ShelterType classifies the physical structure of a shelter.
type ShelterType string

const (
	ShelterTypeBunker   ShelterType = "bunker"
	ShelterTypeBasement ShelterType = "basement"
	ShelterTypeSubway   ShelterType = "subway"
	ShelterTypeParking  ShelterType = "parking"
	ShelterTypeTunnel   ShelterType = "tunnel"
	ShelterTypeOther    ShelterType = "other"
)

// Valid reports whether the shelter type is supported.
func (t ShelterType) Valid() bool {
	switch t {
	case ShelterTypeBunker, ShelterTypeBasement, ShelterTypeSubway,
		ShelterTypeParking, ShelterTypeTunnel, ShelterTypeOther:
		return true
	default:
		return false
	}
}

// ShelterStatus is the operational state of a shelter.
type ShelterStatus string

const (
	ShelterStatusActive   ShelterStatus = "active"
	ShelterStatusLimited  ShelterStatus = "limited"
	ShelterStatusInactive ShelterStatus = "inactive"
	ShelterStatusPlanned  ShelterStatus = "planned"
)

// Valid reports whether the shelter status is supported.
func (s ShelterStatus) Valid() bool {
	switch s {
	case ShelterStatusActive, ShelterStatusLimited, ShelterStatusInactive, ShelterStatusPlanned:
		return true
	default:
		return false
	}
}

// ConditionRating grades structural or technical condition.
type ConditionRating string

const (
	ConditionGood    ConditionRating = "good"
	ConditionFair    ConditionRating = "fair"
	ConditionPoor    ConditionRating = "poor"
	ConditionUnknown ConditionRating = "unknown"
)

// ProtectionLevel is the certified protection class of a shelter.
type ProtectionLevel string

const (
	ProtectionBasic    ProtectionLevel = "basic"
	ProtectionEnhanced ProtectionLevel = "enhanced"
	ProtectionFull     ProtectionLevel = "full"
)

// OperatorType describes who runs a shelter.
type OperatorType string

const (
	OperatorPublic  OperatorType = "public"
	OperatorPrivate OperatorType = "private"
	OperatorFederal OperatorType = "federal"
)

// ApprovalStatus tracks the administrative approval workflow.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Address is a German postal address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
}

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Accessibility lists barrier-free access features.
type Accessibility struct {
	Wheelchair  bool `json:"wheelchair"`
	Elevator    bool `json:"elevator"`
	GroundLevel bool `json:"ground_level"`
}

// Equipment lists the technical equipment available in a shelter.
type Equipment struct {
	Ventilation   bool `json:"ventilation"`
	Power         bool `json:"power"`
	Water         bool `json:"water"`
	Sanitation    bool `json:"sanitation"`
	Communication bool `json:"communication"`
}

// Condition captures inspection state.
type Condition struct {
	Structural     ConditionRating `json:"structural"`
	Technical      ConditionRating `json:"technical"`
	LastInspection time.Time       `json:"last_inspection"`
	NextInspection time.Time       `json:"next_inspection"`
}

// Operator identifies the responsible operating organization.
type Operator struct {
	Type    OperatorType `json:"type"`
	Name    string       `json:"name"`
	Contact string       `json:"contact"`
}

// Shelter is a registered civil-defense shelter record.
type Shelter struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Type               ShelterType     `json:"type"`
	Status             ShelterStatus   `json:"status"`
	Address            Address         `json:"address"`
	Coordinates        Coordinates     `json:"coordinates"`
	Capacity           int             `json:"capacity"`
	ProtectionLevel    ProtectionLevel `json:"protection_level"`
	Accessibility      Accessibility   `json:"accessibility"`
	Equipment          Equipment       `json:"equipment"`
	Condition          Condition       `json:"condition"`
	Operator           Operator        `json:"operator"`
	Documents          []string        `json:"documents,omitempty"`
	Photos             []string        `json:"photos,omitempty"`
	ApprovalStatus     ApprovalStatus  `json:"approval_status,omitempty"`
	AssignedOperatorID string          `json:"assigned_operator_id,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// CreateShelterRequest carries the fields an operator submits for a new
// shelter. The record enters the approval workflow as pending.
type CreateShelterRequest struct {
	Name               string          `json:"name"`
	Type               ShelterType     `json:"type"`
	Address            Address         `json:"address"`
	Coordinates        Coordinates     `json:"coordinates"`
	Capacity           int             `json:"capacity"`
	ProtectionLevel    ProtectionLevel `json:"protection_level"`
	Accessibility      Accessibility   `json:"accessibility"`
	Equipment          Equipment       `json:"equipment"`
	Condition          Condition       `json:"condition"`
	Operator           Operator        `json:"operator"`
	AssignedOperatorID string          `json:"assigned_operator_id,omitempty"`
}

// Validate checks the request for structural problems before it reaches
// the repository.
func (r *CreateShelterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("shelter name is required")
	}
	if !r.Type.Valid() {
		return errors.New("invalid shelter type")
	}
	if r.Capacity <= 0 {
		return errors.New("capacity must be positive")
	}
	if strings.TrimSpace(r.Address.City) == "" {
		return errors.New("address city is required")
	}
	return nil
}

// UpdateShelterRequest carries a partial shelter update. Nil fields are
// left unchanged.
type UpdateShelterRequest struct {
	Name     *string        `json:"name,omitempty"`
	Status   *ShelterStatus `json:"status,omitempty"`
	Capacity *int           `json:"capacity,omitempty"`
	Address  *Address       `json:"address,omitempty"`
	Equip    *Equipment     `json:"equipment,omitempty"`
	Cond     *Condition     `json:"condition,omitempty"`
}

// ShelterFilters narrows shelter listings. Empty slices and zero values
// mean "no restriction" for that dimension.
type ShelterFilters struct {
	Types       []ShelterType   `json:"types,omitempty"`
	Statuses    []ShelterStatus `json:"statuses,omitempty"`
	MinCapacity int             `json:"min_capacity,omitempty"`
	States      []string        `json:"states,omitempty"`
	Wheelchair  bool            `json:"wheelchair,omitempty"`
	Elevator    bool            `json:"elevator,omitempty"`
	GroundLevel bool            `json:"ground_level,omitempty"`
}

// Matches reports whether the shelter passes all declared filters.
func (f ShelterFilters) Matches(s *Shelter) bool {
	if len(f.Types) > 0 && !containsType(f.Types, s.Type) {
		return false
	}
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, s.Status) {
		return false
	}
	if f.MinCapacity > 0 && s.Capacity < f.MinCapacity {
		return false
	}
	if len(f.States) > 0 && !containsString(f.States, s.Address.State) {
		return false
	}
	if f.Wheelchair && !s.Accessibility.Wheelchair {
		return false
	}
	if f.Elevator && !s.Accessibility.Elevator {
		return false
	}
	if f.GroundLevel && !s.Accessibility.GroundLevel {
		return false
	}
	return true
}

func containsType(list []ShelterType, v ShelterType) bool {
	for _, t := range list {
		if t == v {
			return true
		}
	}
	return false
}

func containsStatus(list []ShelterStatus, v ShelterStatus) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// SearchResult pairs a shelter with its distance from a query point.
type SearchResult struct {
	Shelter     *Shelter `json:"shelter"`
	DistanceM   int      `json:"distance_m"`
	WalkingMins int      `json:"walking_mins"`
}

// Page is a generic pagination envelope.
type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}
