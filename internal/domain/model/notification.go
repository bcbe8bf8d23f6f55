package model

import (
	"time"

	"github.com/zivilschutz/schutzraum-api/internal/domain/auth"
)

// NotificationType classifies portal notifications.
type NotificationType string

const (
	NotificationInfo            NotificationType = "info"
	NotificationWarning         NotificationType = "warning"
	NotificationAlert           NotificationType = "alert"
	NotificationSuccess         NotificationType = "success"
	NotificationApprovalRequest NotificationType = "approval_request"
	NotificationStatusChange    NotificationType = "status_change"
)

// Notification is a role-scoped portal message. Visibility is declared
// per notification rather than per recipient; a notification is shown to
// every user whose role appears in VisibleToRoles.
type Notification struct {
	ID             string           `json:"id"`
	VisibleToRoles []auth.Role      `json:"visible_to_roles"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	CreatedAt      time.Time        `json:"created_at"`
	Read           bool             `json:"read"`
	Link           string           `json:"link,omitempty"`
	ShelterID      string           `json:"shelter_id,omitempty"`
}

// VisibleTo reports whether the notification is visible to the role.
func (n *Notification) VisibleTo(role auth.Role) bool {
	for _, r := range n.VisibleToRoles {
		if r == role {
			return true
		}
	}
	return false
}
