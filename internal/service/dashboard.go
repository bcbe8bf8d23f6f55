package service

import (
	"context"
	"fmt"
	"time"

	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
	"github.com/zivilschutz/schutzraum-api/internal/ports"
)

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Shelters ports.ShelterRepository
	Now      func() time.Time // Defaults to time.Now
}

// DashboardService aggregates the shelter inventory for the admin
// dashboards.
type DashboardService struct {
	shelters ports.ShelterRepository
	now      func() time.Time
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &DashboardService{shelters: opts.Shelters, now: now}
}

// inspectionDueWindow is how far ahead an upcoming inspection counts as
// due on the dashboard.
const inspectionDueWindow = 30 * 24 * time.Hour

// Stats aggregates the whole inventory.
func (s *DashboardService) Stats(ctx context.Context) (model.DashboardStats, error) {
	all, err := s.shelters.List(ctx, model.ShelterFilters{})
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("list shelters: %w", err)
	}
	return s.aggregate(all), nil
}

// StatsByState aggregates the inventory of a single federal state.
func (s *DashboardService) StatsByState(ctx context.Context, state string) (model.DashboardStats, error) {
	shelters, err := s.shelters.List(ctx, model.ShelterFilters{States: []string{state}})
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("list shelters: %w", err)
	}
	return s.aggregate(shelters), nil
}

// RegionalBreakdown returns per-state shelter counts and capacity.
func (s *DashboardService) RegionalBreakdown(ctx context.Context) ([]model.RegionalStats, error) {
	all, err := s.shelters.List(ctx, model.ShelterFilters{})
	if err != nil {
		return nil, fmt.Errorf("list shelters: %w", err)
	}

	byState := make(map[string]*model.RegionalStats)
	var order []string
	for _, shelter := range all {
		state := shelter.Address.State
		rs, ok := byState[state]
		if !ok {
			rs = &model.RegionalStats{State: state}
			byState[state] = rs
			order = append(order, state)
		}
		rs.ShelterCount++
		rs.TotalCapacity += shelter.Capacity
	}

	out := make([]model.RegionalStats, 0, len(order))
	for _, state := range order {
		out = append(out, *byState[state])
	}
	return out, nil
}

func (s *DashboardService) aggregate(shelters []*model.Shelter) model.DashboardStats {
	stats := model.DashboardStats{TotalShelters: len(shelters)}
	dueBefore := s.now().Add(inspectionDueWindow)
	for _, shelter := range shelters {
		switch shelter.Status {
		case model.ShelterStatusActive:
			stats.ActiveShelters++
		case model.ShelterStatusLimited:
			stats.LimitedShelters++
		case model.ShelterStatusInactive:
			stats.InactiveShelters++
		case model.ShelterStatusPlanned:
			stats.PlannedShelters++
		}
		stats.TotalCapacity += shelter.Capacity
		if shelter.ApprovalStatus == model.ApprovalPending {
			stats.PendingApprovals++
		}
		if !shelter.Condition.NextInspection.IsZero() && !shelter.Condition.NextInspection.After(dueBefore) {
			stats.InspectionsDue++
		}
	}
	return stats
}
