package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/zivilschutz/schutzraum-api/internal/domain/auth"
	"github.com/zivilschutz/schutzraum-api/internal/ports"
)

// ErrUnknownEmail is returned by Login when no identity is registered
// under the given address. A wrong email is a normal negative result
// and must not be reported as a fault.
var ErrUnknownEmail error = unknownEmailError{}

type unknownEmailError struct{}

func (unknownEmailError) Error() string { return "no account registered under this email" }

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Directory  ports.IdentityDirectory
	Sessions   ports.SessionStore
	Provider   ports.AuthProvider // Only set in OIDC mode
	Roles      ports.RoleMapper   // Only set in OIDC mode
	SessionTTL time.Duration
}

// AuthService orchestrates login, logout, and per-request session
// restore. The demo path is email login against the identity directory;
// OIDC is the production path.
type AuthService struct {
	directory  ports.IdentityDirectory
	sessions   ports.SessionStore
	provider   ports.AuthProvider
	roles      ports.RoleMapper
	sessionTTL time.Duration
}

const defaultSessionTTL = 8 * time.Hour

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		directory:  opts.Directory,
		sessions:   opts.Sessions,
		provider:   opts.Provider,
		roles:      opts.Roles,
		sessionTTL: ttl,
	}
}

// Login signs a user in by email. The directory decides who exists; a
// hit mints a fresh session, a miss returns ErrUnknownEmail. Logging in
// again simply creates a new session; earlier sessions stay valid until
// they expire or are logged out.
func (s *AuthService) Login(ctx context.Context, email string) (*domainauth.Session, error) {
	if email == "" {
		return nil, ErrUnknownEmail
	}

	identity, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ports.ErrIdentityNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, fmt.Errorf("directory lookup: %w", err)
	}

	session := s.mintSession(identity)
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}
	return &session, nil
}

// BeginLoginResult contains the result of beginning an OIDC login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginOIDCLogin initiates the OIDC flow and returns the provider auth
// URL with state and nonce.
func (s *AuthService) BeginOIDCLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if s.provider == nil {
		return nil, errors.New("OIDC login is not configured")
	}
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, nonce, err := s.provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteOIDCLoginInput groups parameters for completing an OIDC flow.
type CompleteOIDCLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteOIDCLogin exchanges the authorization code for an external
// identity, maps IdP groups onto a portal role, and persists a session.
func (s *AuthService) CompleteOIDCLogin(ctx context.Context, input CompleteOIDCLoginInput) (*domainauth.Session, error) {
	if s.provider == nil || s.roles == nil {
		return nil, errors.New("OIDC login is not configured")
	}
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}

	ext, err := s.provider.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	identity := domainauth.Identity{
		ID:    ext.Subject,
		Name:  ext.Name,
		Email: ext.Email,
		Role:  s.roles.Map(ext.Groups),
	}

	session := s.mintSession(identity)
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}
	return &session, nil
}

// GetSession is the per-request restore step: it resolves the session
// cookie against the store. Missing, expired, and corrupt records all
// degrade to (nil, nil); only a store failure is an error, and callers
// must not fall back to an authorization decision in that case.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, nil
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}

// Logout removes a session. Logging out an unknown or empty session ID
// is a no-op success.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Users lists all registered identities (admin user management).
func (s *AuthService) Users(ctx context.Context) ([]domainauth.Identity, error) {
	users, err := s.directory.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}
	return users, nil
}

func (s *AuthService) mintSession(identity domainauth.Identity) domainauth.Session {
	return domainauth.Session{
		ID:           uuid.NewString(),
		UserID:       identity.ID,
		Name:         identity.Name,
		Email:        identity.Email,
		Role:         identity.Role,
		Municipality: identity.Municipality,
		State:        identity.State,
		ExpiresAt:    time.Now().Add(s.sessionTTL),
	}
}
