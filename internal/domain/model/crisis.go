package model

import "time"

// CrisisBroadcast is a message pushed to affected regions while crisis
// mode is active.
type CrisisBroadcast struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Regions []string  `json:"regions"`
	SentAt  time.Time `json:"sent_at"`
	SentBy  string    `json:"sent_by"`
}

// CrisisState is the portal-wide crisis mode. At most one crisis is
// active at a time; activation replaces the affected-region set.
type CrisisState struct {
	Active          bool              `json:"active"`
	ActivatedAt     time.Time         `json:"activated_at,omitzero"`
	ActivatedBy     string            `json:"activated_by,omitempty"`
	AffectedRegions []string          `json:"affected_regions"`
	Broadcasts      []CrisisBroadcast `json:"broadcasts"`
}
