package ports

import (
	"context"

	"github.com/zivilschutz/schutzraum-api/internal/domain/auth"
	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
)

// ShelterRepository provides access to the shelter inventory.
type ShelterRepository interface {
	List(ctx context.Context, filters model.ShelterFilters) ([]*model.Shelter, error)
	GetByID(ctx context.Context, id string) (*model.Shelter, error)
	Create(ctx context.Context, shelter *model.Shelter) error
	Update(ctx context.Context, shelter *model.Shelter) error
}

// NotificationRepository provides access to role-scoped notifications.
type NotificationRepository interface {
	ListByRole(ctx context.Context, role auth.Role) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, role auth.Role) error
}

// CrisisRepository holds the single portal-wide crisis state.
type CrisisRepository interface {
	Get(ctx context.Context) (model.CrisisState, error)
	Put(ctx context.Context, state model.CrisisState) error
}
