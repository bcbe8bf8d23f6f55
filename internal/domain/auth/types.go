package auth

// Package auth contains domain-level types for authentication, roles, and
// sessions. It is pure and free of framework/adapter concerns.

import (
	"fmt"
	"time"
)

// Role represents a portal privilege class.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below; use ParseRole at input
// boundaries so an unknown role never travels past validation.
type Role string

const (
	RoleCitizen        Role = "citizen"
	RoleOperator       Role = "operator"
	RoleMunicipalAdmin Role = "municipal_admin"
	RoleStateAdmin     Role = "state_admin"
	RoleFederalAdmin   Role = "federal_admin"
	RoleCrisisManager  Role = "crisis_manager"
)

// roleRank is the total order used by minimum-role checks, strictly
// increasing in privilege. Note that crisis_manager ranks above
// federal_admin here, while crisis-only views are gated by an explicit
// allow-list instead (see guard.go); the two mechanisms are independent.
var roleRank = map[Role]int{
	RoleCitizen:        0,
	RoleOperator:       1,
	RoleMunicipalAdmin: 2,
	RoleStateAdmin:     3,
	RoleFederalAdmin:   4,
	RoleCrisisManager:  5,
}

// Roles returns all valid roles in ascending rank order.
func Roles() []Role {
	return []Role{
		RoleCitizen,
		RoleOperator,
		RoleMunicipalAdmin,
		RoleStateAdmin,
		RoleFederalAdmin,
		RoleCrisisManager,
	}
}

// Rank returns the role's position in the minimum-role order.
// Unknown roles rank below every valid role so they never satisfy a check.
func (r Role) Rank() int {
	if rank, ok := roleRank[r]; ok {
		return rank
	}
	return -1
}

// Valid reports whether r is one of the six defined roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// ParseRole converts a raw string into a Role, rejecting anything outside
// the closed six-role set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("invalid role: %q", s)
	}
	return r, nil
}

// Identity represents an authenticated principal. Role is fixed at record
// creation; there is no in-place role mutation.
type Identity struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	Municipality string // optional, display only
	State        string // optional, display only
}

// HasRole reports whether the identity's role is a member of the allowed
// set. A nil identity is never authorized.
func HasRole(identity *Identity, allowed ...Role) bool {
	if identity == nil {
		return false
	}
	for _, r := range allowed {
		if identity.Role == r {
			return true
		}
	}
	return false
}

// HasMinimumRole reports whether the identity's role ranks at or above the
// minimum. A nil identity is never authorized.
func HasMinimumRole(identity *Identity, minimum Role) bool {
	if identity == nil {
		return false
	}
	return identity.Role.Rank() >= minimum.Rank()
}

// Session is the server-side record persisted for an authenticated user.
// ID is an opaque session identifier (e.g., random URL-safe string).
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	Municipality string    `json:"municipality,omitempty"`
	State        string    `json:"state,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Identity reconstructs the authenticated identity carried by the session.
func (s Session) Identity() *Identity {
	return &Identity{
		ID:           s.UserID,
		Name:         s.Name,
		Email:        s.Email,
		Role:         s.Role,
		Municipality: s.Municipality,
		State:        s.State,
	}
}
