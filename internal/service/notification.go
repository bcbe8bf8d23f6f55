package service

import (
	"context"
	"fmt"

	"github.com/zivilschutz/schutzraum-api/internal/domain/auth"
	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
	"github.com/zivilschutz/schutzraum-api/internal/ports"
)

// NotificationServiceOptions groups dependencies for NotificationService.
type NotificationServiceOptions struct {
	Notifications ports.NotificationRepository
}

// NotificationService exposes the role-scoped notification feed.
type NotificationService struct {
	notifications ports.NotificationRepository
}

// NewNotificationService constructs a new NotificationService.
func NewNotificationService(opts NotificationServiceOptions) *NotificationService {
	return &NotificationService{notifications: opts.Notifications}
}

// List returns all notifications visible to the role.
func (s *NotificationService) List(ctx context.Context, role auth.Role) ([]*model.Notification, error) {
	items, err := s.notifications.ListByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return items, nil
}

// UnreadCount returns the number of unread notifications for the role.
func (s *NotificationService) UnreadCount(ctx context.Context, role auth.Role) (int, error) {
	items, err := s.notifications.ListByRole(ctx, role)
	if err != nil {
		return 0, fmt.Errorf("list notifications: %w", err)
	}
	count := 0
	for _, n := range items {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkRead marks a single notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	if err := s.notifications.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("mark notification %s read: %w", id, err)
	}
	return nil
}

// MarkAllRead marks every notification visible to the role as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, role auth.Role) error {
	if err := s.notifications.MarkAllRead(ctx, role); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}
