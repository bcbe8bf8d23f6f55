package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
	apperrors "github.com/zivilschutz/schutzraum-api/internal/errors"
	"github.com/zivilschutz/schutzraum-api/internal/ports"
)

// CrisisServiceOptions groups dependencies for CrisisService.
type CrisisServiceOptions struct {
	Crisis ports.CrisisRepository
	Now    func() time.Time // Defaults to time.Now
}

// CrisisService manages the portal-wide crisis mode. Access is gated in
// the route table; the service itself records who acted.
type CrisisService struct {
	crisis ports.CrisisRepository
	now    func() time.Time
}

// NewCrisisService constructs a new CrisisService.
func NewCrisisService(opts CrisisServiceOptions) *CrisisService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &CrisisService{crisis: opts.Crisis, now: now}
}

// Status returns the current crisis state.
func (s *CrisisService) Status(ctx context.Context) (model.CrisisState, error) {
	state, err := s.crisis.Get(ctx)
	if err != nil {
		return model.CrisisState{}, fmt.Errorf("get crisis state: %w", err)
	}
	return state, nil
}

// Activate turns crisis mode on for the given regions. Re-activating
// replaces the affected-region set but keeps earlier broadcasts.
func (s *CrisisService) Activate(ctx context.Context, actorID string, regions []string) (model.CrisisState, error) {
	if len(regions) == 0 {
		return model.CrisisState{}, apperrors.Validation("at least one affected region is required", "regions")
	}
	for _, region := range regions {
		if !model.IsGermanState(region) {
			return model.CrisisState{}, apperrors.Validation("unknown federal state: "+region, "regions")
		}
	}

	state, err := s.crisis.Get(ctx)
	if err != nil {
		return model.CrisisState{}, fmt.Errorf("get crisis state: %w", err)
	}

	state.Active = true
	state.ActivatedAt = s.now()
	state.ActivatedBy = actorID
	state.AffectedRegions = regions

	if err := s.crisis.Put(ctx, state); err != nil {
		return model.CrisisState{}, fmt.Errorf("put crisis state: %w", err)
	}
	return state, nil
}

// Deactivate turns crisis mode off. Idempotent.
func (s *CrisisService) Deactivate(ctx context.Context) (model.CrisisState, error) {
	state, err := s.crisis.Get(ctx)
	if err != nil {
		return model.CrisisState{}, fmt.Errorf("get crisis state: %w", err)
	}

	state.Active = false
	state.ActivatedAt = time.Time{}
	state.ActivatedBy = ""
	state.AffectedRegions = nil

	if err := s.crisis.Put(ctx, state); err != nil {
		return model.CrisisState{}, fmt.Errorf("put crisis state: %w", err)
	}
	return state, nil
}

// Broadcast sends a crisis message to the given regions. Requires
// crisis mode to be active.
func (s *CrisisService) Broadcast(ctx context.Context, actorID, message string, regions []string) (model.CrisisBroadcast, error) {
	if message == "" {
		return model.CrisisBroadcast{}, apperrors.Validation("broadcast message is required", "message")
	}

	state, err := s.crisis.Get(ctx)
	if err != nil {
		return model.CrisisBroadcast{}, fmt.Errorf("get crisis state: %w", err)
	}
	if !state.Active {
		return model.CrisisBroadcast{}, apperrors.Validation("crisis mode is not active", "")
	}
	if len(regions) == 0 {
		regions = state.AffectedRegions
	}

	broadcast := model.CrisisBroadcast{
		ID:      "broadcast-" + uuid.NewString(),
		Message: message,
		Regions: regions,
		SentAt:  s.now(),
		SentBy:  actorID,
	}
	state.Broadcasts = append(state.Broadcasts, broadcast)

	if err := s.crisis.Put(ctx, state); err != nil {
		return model.CrisisBroadcast{}, fmt.Errorf("put crisis state: %w", err)
	}
	return broadcast, nil
}
