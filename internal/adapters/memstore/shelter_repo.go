package memstore

import (
	"context"
	"sync"

	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
	apperrors "github.com/zivilschutz/schutzraum-api/internal/errors"
)

// ShelterRepo is the in-memory shelter inventory. Records are deep-copied
// on the way in and out so callers can never mutate repository state
// through a shared pointer.
type ShelterRepo struct {
	mu       sync.RWMutex
	shelters map[string]*model.Shelter
	order    []string
}

// NewShelterRepo creates a repository seeded with the given shelters.
func NewShelterRepo(seed []*model.Shelter) *ShelterRepo {
	r := &ShelterRepo{shelters: make(map[string]*model.Shelter, len(seed))}
	for _, s := range seed {
		cp := cloneShelter(s)
		r.shelters[cp.ID] = cp
		r.order = append(r.order, cp.ID)
	}
	return r
}

func (r *ShelterRepo) List(_ context.Context, filters model.ShelterFilters) ([]*model.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*model.Shelter
	for _, id := range r.order {
		s := r.shelters[id]
		if filters.Matches(s) {
			out = append(out, cloneShelter(s))
		}
	}
	return out, nil
}

func (r *ShelterRepo) GetByID(_ context.Context, id string) (*model.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.shelters[id]
	if !ok {
		return nil, apperrors.NotFound("shelter not found")
	}
	return cloneShelter(s), nil
}

func (r *ShelterRepo) Create(_ context.Context, shelter *model.Shelter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.shelters[shelter.ID]; exists {
		return &apperrors.AppError{Code: apperrors.ErrCodeConflict, Message: "shelter ID already exists"}
	}
	cp := cloneShelter(shelter)
	r.shelters[cp.ID] = cp
	r.order = append(r.order, cp.ID)
	return nil
}

func (r *ShelterRepo) Update(_ context.Context, shelter *model.Shelter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shelters[shelter.ID]; !ok {
		return apperrors.NotFound("shelter not found")
	}
	r.shelters[shelter.ID] = cloneShelter(shelter)
	return nil
}

// cloneShelter copies a shelter including its slices.
func cloneShelter(s *model.Shelter) *model.Shelter {
	cp := *s
	if s.Documents != nil {
		cp.Documents = append([]string(nil), s.Documents...)
	}
	if s.Photos != nil {
		cp.Photos = append([]string(nil), s.Photos...)
	}
	return &cp
}
