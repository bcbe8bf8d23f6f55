package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"fmt"

	domainauth "github.com/zivilschutz/schutzraum-api/internal/domain/auth"
	"github.com/zivilschutz/schutzraum-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthProvider = (*MockAuthProvider)(nil)
	_ ports.SessionStore = (*FailingSessionStore)(nil)
)

// MockAuthProvider simulates an IdP for tests with deterministic
// state/nonce handling.
type MockAuthProvider struct {
	BeginFunc    func(ctx context.Context, in ports.BeginInput) (authURL, state, nonce string, err error)
	ExchangeFunc func(ctx context.Context, in ports.ExchangeInput) (ports.ExternalIdentity, error)

	AuthURL     string
	StatePrefix string
	NoncePrefix string
	DefaultUser ports.ExternalIdentity

	callCount int
}

// NewMockAuthProvider creates a MockAuthProvider with sensible defaults.
func NewMockAuthProvider() *MockAuthProvider {
	return &MockAuthProvider{
		AuthURL:     "https://mock-idp/auth",
		StatePrefix: "state",
		NoncePrefix: "nonce",
		DefaultUser: ports.ExternalIdentity{
			Subject: "mock-user-1",
			Name:    "Mock User",
			Email:   "mock.user@example.de",
			Groups:  []string{"schutzraum-betreiber"},
		},
	}
}

func (m *MockAuthProvider) Begin(ctx context.Context, in ports.BeginInput) (string, string, string, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, in)
	}

	m.callCount++
	state := fmt.Sprintf("%s-%d", m.StatePrefix, m.callCount)
	nonce := fmt.Sprintf("%s-%d", m.NoncePrefix, m.callCount)
	return m.AuthURL, state, nonce, nil
}

func (m *MockAuthProvider) Exchange(ctx context.Context, in ports.ExchangeInput) (ports.ExternalIdentity, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, in)
	}
	return m.DefaultUser, nil
}

// FailingSessionStore returns the configured error from every call.
// Useful for exercising store-outage paths.
type FailingSessionStore struct {
	Err error
}

func (f *FailingSessionStore) Save(context.Context, domainauth.Session) error { return f.Err }

func (f *FailingSessionStore) Get(context.Context, string) (domainauth.Session, error) {
	return domainauth.Session{}, f.Err
}

func (f *FailingSessionStore) Delete(context.Context, string) error { return f.Err }
