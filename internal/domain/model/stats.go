package model

// DashboardStats aggregates the shelter inventory for dashboards.
type DashboardStats struct {
	TotalShelters    int `json:"total_shelters"`
	ActiveShelters   int `json:"active_shelters"`
	LimitedShelters  int `json:"limited_shelters"`
	InactiveShelters int `json:"inactive_shelters"`
	PlannedShelters  int `json:"planned_shelters"`
	TotalCapacity    int `json:"total_capacity"`
	PendingApprovals int `json:"pending_approvals"`
	InspectionsDue   int `json:"inspections_due"`
}

// RegionalStats breaks shelter coverage down by federal state.
type RegionalStats struct {
	State         string  `json:"state"`
	ShelterCount  int     `json:"shelter_count"`
	TotalCapacity int     `json:"total_capacity"`
	Population    int     `json:"population,omitempty"`
	CoveragePct   float64 `json:"coverage_pct,omitempty"`
}
