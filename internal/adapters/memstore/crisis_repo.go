package memstore

import (
	"context"
	"sync"

	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
)

// CrisisRepo holds the single portal-wide crisis state.
type CrisisRepo struct {
	mu    sync.RWMutex
	state model.CrisisState
}

// NewCrisisRepo creates a repository with crisis mode inactive.
func NewCrisisRepo() *CrisisRepo {
	return &CrisisRepo{}
}

func (r *CrisisRepo) Get(_ context.Context) (model.CrisisState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneCrisisState(r.state), nil
}

func (r *CrisisRepo) Put(_ context.Context, state model.CrisisState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = cloneCrisisState(state)
	return nil
}

func cloneCrisisState(s model.CrisisState) model.CrisisState {
	cp := s
	cp.AffectedRegions = append([]string(nil), s.AffectedRegions...)
	cp.Broadcasts = make([]model.CrisisBroadcast, len(s.Broadcasts))
	for i, b := range s.Broadcasts {
		cp.Broadcasts[i] = b
		cp.Broadcasts[i].Regions = append([]string(nil), b.Regions...)
	}
	return cp
}
