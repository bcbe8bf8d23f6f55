package memstore

import (
	"context"
	"sync"

	"github.com/zivilschutz/schutzraum-api/internal/domain/auth"
	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
	apperrors "github.com/zivilschutz/schutzraum-api/internal/errors"
)

// NotificationRepo is the in-memory notification feed. Read flags are the
// only mutable part of a notification.
type NotificationRepo struct {
	mu            sync.RWMutex
	notifications []*model.Notification
}

// NewNotificationRepo creates a repository seeded with the given notifications.
func NewNotificationRepo(seed []*model.Notification) *NotificationRepo {
	r := &NotificationRepo{}
	for _, n := range seed {
		cp := *n
		cp.VisibleToRoles = append([]auth.Role(nil), n.VisibleToRoles...)
		r.notifications = append(r.notifications, &cp)
	}
	return r
}

func (r *NotificationRepo) ListByRole(_ context.Context, role auth.Role) ([]*model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*model.Notification
	for _, n := range r.notifications {
		if n.VisibleTo(role) {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *NotificationRepo) MarkRead(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return apperrors.NotFound("notification not found")
}

func (r *NotificationRepo) MarkAllRead(_ context.Context, role auth.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.VisibleTo(role) {
			n.Read = true
		}
	}
	return nil
}
