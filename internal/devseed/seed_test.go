package devseed

import (
	"testing"

	"github.com/zivilschutz/schutzraum-api/internal/domain/auth"
)

func TestUsersCoverEveryRole(t *testing.T) {
	seen := make(map[auth.Role]bool)
	for _, u := range Users() {
		if !u.Role.Valid() {
			t.Errorf("user %s has invalid role %q", u.ID, u.Role)
		}
		if seen[u.Role] {
			t.Errorf("role %q seeded twice", u.Role)
		}
		seen[u.Role] = true
	}
	for _, role := range auth.Roles() {
		if !seen[role] {
			t.Errorf("no demo account for role %q", role)
		}
	}
}

func TestNotificationShelterReferencesResolve(t *testing.T) {
	ids := make(map[string]bool)
	for _, s := range Shelters() {
		ids[s.ID] = true
	}
	for _, n := range Notifications() {
		if n.ShelterID != "" && !ids[n.ShelterID] {
			t.Errorf("notification %s references unknown shelter %s", n.ID, n.ShelterID)
		}
	}
}

func TestSheltersAreWellFormed(t *testing.T) {
	for _, s := range Shelters() {
		if s.Capacity <= 0 {
			t.Errorf("shelter %s has non-positive capacity", s.ID)
		}
		if !s.Type.Valid() || !s.Status.Valid() {
			t.Errorf("shelter %s has invalid type or status", s.ID)
		}
		if s.Address.State == "" {
			t.Errorf("shelter %s is missing a federal state", s.ID)
		}
	}
}
