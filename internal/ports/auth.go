package ports

// Package ports defines interfaces (hexagonal ports) for auth-related
// behavior. Implementations live in internal/adapters; orchestration in
// internal/service.

import (
	"context"

	domainauth "github.com/zivilschutz/schutzraum-api/internal/domain/auth"
)

// SessionStore persists and retrieves user sessions. The store is the
// durable side of the session: a session written here must survive a
// process restart and round-trip to an equivalent record.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error

	// Get returns the session, or ErrSessionNotFound when the ID is
	// unknown, the record is corrupt, or the session has expired.
	Get(ctx context.Context, id string) (domainauth.Session, error)

	Delete(ctx context.Context, id string) error
}

// ErrSessionNotFound is returned by SessionStore.Get on a miss. Expired
// and corrupt records degrade to this same negative result.
var ErrSessionNotFound error = sessionNotFoundError{}

type sessionNotFoundError struct{}

func (sessionNotFoundError) Error() string { return "session not found" }

// IdentityDirectory resolves portal identities. The demo portal backs
// this with the seeded in-memory directory; a real deployment would back
// it with a user registry.
type IdentityDirectory interface {
	// FindByEmail returns the identity registered under the contact
	// address, or ErrIdentityNotFound.
	FindByEmail(ctx context.Context, email string) (domainauth.Identity, error)

	// FindByID returns the identity with the given stable ID, or
	// ErrIdentityNotFound.
	FindByID(ctx context.Context, id string) (domainauth.Identity, error)

	// List returns all registered identities (admin user management).
	List(ctx context.Context) ([]domainauth.Identity, error)
}

// ErrIdentityNotFound is returned by IdentityDirectory lookups that miss.
// A miss is a normal negative result, not a fault.
var ErrIdentityNotFound error = identityNotFoundError{}

type identityNotFoundError struct{}

func (identityNotFoundError) Error() string { return "identity not found" }

// BeginInput carries inputs for initiating an external auth flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// ExternalIdentity is the principal returned by an identity provider
// before it is mapped onto a portal identity.
type ExternalIdentity struct {
	Subject string
	Name    string
	Email   string
	Groups  []string
}

// AuthProvider initiates and completes an authentication flow against an
// IdP. Only used in OIDC mode; the demo's email login bypasses it.
type AuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an
	// opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and
	// returns the authenticated external identity.
	Exchange(ctx context.Context, in ExchangeInput) (ExternalIdentity, error)
}

// RoleMapper maps IdP groups to portal roles.
type RoleMapper interface {
	Map(groups []string) domainauth.Role
}
