package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zivilschutz/schutzraum-api/internal/domain/geo"
	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
	apperrors "github.com/zivilschutz/schutzraum-api/internal/errors"
	"github.com/zivilschutz/schutzraum-api/internal/ports"
)

// ShelterServiceOptions groups dependencies for ShelterService.
type ShelterServiceOptions struct {
	Shelters ports.ShelterRepository
	Now      func() time.Time // Defaults to time.Now
}

// ShelterService exposes the shelter catalog: public listing and
// search, and the operator/admin maintenance workflow.
type ShelterService struct {
	shelters ports.ShelterRepository
	now      func() time.Time
}

// NewShelterService constructs a new ShelterService.
func NewShelterService(opts ShelterServiceOptions) *ShelterService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &ShelterService{shelters: opts.Shelters, now: now}
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// List returns a filtered, paginated view of the catalog. Page numbers
// start at 1; out-of-range pages return an empty data slice with the
// correct totals.
func (s *ShelterService) List(ctx context.Context, filters model.ShelterFilters, page, pageSize int) (model.Page[*model.Shelter], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	all, err := s.shelters.List(ctx, filters)
	if err != nil {
		return model.Page[*model.Shelter]{}, fmt.Errorf("list shelters: %w", err)
	}

	total := len(all)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return model.Page[*model.Shelter]{
		Data:       all[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// Get returns a single shelter by ID.
func (s *ShelterService) Get(ctx context.Context, id string) (*model.Shelter, error) {
	shelter, err := s.shelters.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shelter %s: %w", id, err)
	}
	return shelter, nil
}

// Search matches the query case-insensitively against shelter name,
// city, and street. An empty query returns no results.
func (s *ShelterService) Search(ctx context.Context, query string) ([]*model.Shelter, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	all, err := s.shelters.List(ctx, model.ShelterFilters{})
	if err != nil {
		return nil, fmt.Errorf("list shelters: %w", err)
	}

	var results []*model.Shelter
	for _, shelter := range all {
		if strings.Contains(strings.ToLower(shelter.Name), q) ||
			strings.Contains(strings.ToLower(shelter.Address.City), q) ||
			strings.Contains(strings.ToLower(shelter.Address.Street), q) {
			results = append(results, shelter)
		}
	}
	return results, nil
}

// Nearest returns the closest active shelters to a position, sorted by
// distance, with walking time estimates.
func (s *ShelterService) Nearest(ctx context.Context, lat, lng float64, limit int) ([]model.SearchResult, error) {
	if limit < 1 {
		limit = 5
	}

	active, err := s.shelters.List(ctx, model.ShelterFilters{
		Statuses: []model.ShelterStatus{model.ShelterStatusActive},
	})
	if err != nil {
		return nil, fmt.Errorf("list shelters: %w", err)
	}

	results := make([]model.SearchResult, 0, len(active))
	for _, shelter := range active {
		distance := geo.DistanceM(lat, lng, shelter.Coordinates.Lat, shelter.Coordinates.Lng)
		results = append(results, model.SearchResult{
			Shelter:     shelter,
			DistanceM:   int(distance + 0.5),
			WalkingMins: geo.WalkingMinutes(distance),
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].DistanceM < results[j].DistanceM })

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// ListForOperator returns the shelters assigned to an operator user.
func (s *ShelterService) ListForOperator(ctx context.Context, operatorID string) ([]*model.Shelter, error) {
	all, err := s.shelters.List(ctx, model.ShelterFilters{})
	if err != nil {
		return nil, fmt.Errorf("list shelters: %w", err)
	}
	var own []*model.Shelter
	for _, shelter := range all {
		if shelter.AssignedOperatorID == operatorID {
			own = append(own, shelter)
		}
	}
	return own, nil
}

// PendingApprovals returns shelters waiting for administrative approval.
func (s *ShelterService) PendingApprovals(ctx context.Context) ([]*model.Shelter, error) {
	all, err := s.shelters.List(ctx, model.ShelterFilters{})
	if err != nil {
		return nil, fmt.Errorf("list shelters: %w", err)
	}
	var pending []*model.Shelter
	for _, shelter := range all {
		if shelter.ApprovalStatus == model.ApprovalPending {
			pending = append(pending, shelter)
		}
	}
	return pending, nil
}

// Create registers a new shelter. The record always enters the
// approval workflow as pending regardless of who submits it.
func (s *ShelterService) Create(ctx context.Context, req model.CreateShelterRequest) (*model.Shelter, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error(), "")
	}

	now := s.now()
	shelter := &model.Shelter{
		ID:                 "shelter-new-" + uuid.NewString(),
		Name:               req.Name,
		Type:               req.Type,
		Status:             model.ShelterStatusPlanned,
		Address:            req.Address,
		Coordinates:        req.Coordinates,
		Capacity:           req.Capacity,
		ProtectionLevel:    req.ProtectionLevel,
		Accessibility:      req.Accessibility,
		Equipment:          req.Equipment,
		Condition:          req.Condition,
		Operator:           req.Operator,
		ApprovalStatus:     model.ApprovalPending,
		AssignedOperatorID: req.AssignedOperatorID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.shelters.Create(ctx, shelter); err != nil {
		return nil, fmt.Errorf("create shelter: %w", err)
	}
	return shelter, nil
}

// Update applies a partial update. Nil fields in the request leave the
// stored value unchanged.
func (s *ShelterService) Update(ctx context.Context, id string, req model.UpdateShelterRequest) (*model.Shelter, error) {
	shelter, err := s.shelters.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shelter %s: %w", id, err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.Validation("shelter name cannot be empty", "name")
		}
		shelter.Name = *req.Name
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperrors.Validation("invalid shelter status", "status")
		}
		shelter.Status = *req.Status
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, apperrors.Validation("capacity must be positive", "capacity")
		}
		shelter.Capacity = *req.Capacity
	}
	if req.Address != nil {
		shelter.Address = *req.Address
	}
	if req.Equip != nil {
		shelter.Equipment = *req.Equip
	}
	if req.Cond != nil {
		shelter.Condition = *req.Cond
	}
	shelter.UpdatedAt = s.now()

	if err := s.shelters.Update(ctx, shelter); err != nil {
		return nil, fmt.Errorf("update shelter %s: %w", id, err)
	}
	return shelter, nil
}

// Approve marks a pending shelter as approved.
func (s *ShelterService) Approve(ctx context.Context, id string) (*model.Shelter, error) {
	return s.setApproval(ctx, id, model.ApprovalApproved)
}

// Reject marks a pending shelter as rejected. The reason travels in the
// notification feed, not on the record.
func (s *ShelterService) Reject(ctx context.Context, id string) (*model.Shelter, error) {
	return s.setApproval(ctx, id, model.ApprovalRejected)
}

func (s *ShelterService) setApproval(ctx context.Context, id string, status model.ApprovalStatus) (*model.Shelter, error) {
	shelter, err := s.shelters.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shelter %s: %w", id, err)
	}
	shelter.ApprovalStatus = status
	shelter.UpdatedAt = s.now()
	if err := s.shelters.Update(ctx, shelter); err != nil {
		return nil, fmt.Errorf("update shelter %s: %w", id, err)
	}
	return shelter, nil
}
