package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zivilschutz/schutzraum-api/internal/adapters/authroles"
	"github.com/zivilschutz/schutzraum-api/internal/adapters/memstore"
	domainauth "github.com/zivilschutz/schutzraum-api/internal/domain/auth"
	mockauth "github.com/zivilschutz/schutzraum-api/internal/mocks/auth"
	"github.com/zivilschutz/schutzraum-api/internal/ports"
)

func newTestAuthService(t *testing.T) (*AuthService, *memstore.SessionStore) {
	t.Helper()
	sessions := memstore.NewSessionStore()
	directory := memstore.NewIdentityDirectory([]domainauth.Identity{
		{ID: "user-1", Name: "Maria Schmidt", Email: "buerger@demo.de", Role: domainauth.RoleCitizen},
		{ID: "user-6", Name: "Klaus Hoffmann", Email: "krisenstab@demo.de", Role: domainauth.RoleCrisisManager},
	}, 0)
	svc := NewAuthService(AuthServiceOptions{
		Directory:  directory,
		Sessions:   sessions,
		SessionTTL: time.Hour,
	})
	return svc, sessions
}

func TestLoginKnownEmail(t *testing.T) {
	svc, sessions := newTestAuthService(t)

	session, err := svc.Login(context.Background(), "buerger@demo.de")
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, domainauth.RoleCitizen, session.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)

	// The session must be retrievable from the store afterwards.
	stored, err := sessions.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, stored.UserID)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), "nobody@demo.de")
	assert.ErrorIs(t, err, ErrUnknownEmail)

	_, err = svc.Login(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnknownEmail)
}

func TestLoginAgainMintsFreshSession(t *testing.T) {
	svc, _ := newTestAuthService(t)

	first, err := svc.Login(context.Background(), "buerger@demo.de")
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), "buerger@demo.de")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	// The earlier session stays valid until it expires or logs out.
	restored, err := svc.GetSession(context.Background(), first.ID)
	require.NoError(t, err)
	require.NotNil(t, restored)
}

func TestGetSessionMissDegradesToNoSession(t *testing.T) {
	svc, _ := newTestAuthService(t)

	session, err := svc.GetSession(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, session)

	session, err = svc.GetSession(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestGetSessionStoreFailureIsAnError(t *testing.T) {
	boom := errors.New("redis unavailable")
	svc := NewAuthService(AuthServiceOptions{
		Sessions: &mockauth.FailingSessionStore{Err: boom},
	})

	_, err := svc.GetSession(context.Background(), "any")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _ := newTestAuthService(t)

	session, err := svc.Login(context.Background(), "krisenstab@demo.de")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), session.ID))
	require.NoError(t, svc.Logout(context.Background(), session.ID))
	require.NoError(t, svc.Logout(context.Background(), ""))

	restored, err := svc.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestCompleteOIDCLoginMapsGroupsToRole(t *testing.T) {
	provider := mockauth.NewMockAuthProvider()
	provider.DefaultUser = ports.ExternalIdentity{
		Subject: "ext-42",
		Name:    "Sabine Fischer",
		Email:   "sabine@example.de",
		Groups:  []string{"schutzraum-bund"},
	}
	svc := NewAuthService(AuthServiceOptions{
		Sessions: memstore.NewSessionStore(),
		Provider: provider,
		Roles: authroles.GroupRoleMapper{
			FederalAdminGroup: "schutzraum-bund",
			OperatorGroup:     "schutzraum-betreiber",
		},
		SessionTTL: time.Hour,
	})

	session, err := svc.CompleteOIDCLogin(context.Background(), CompleteOIDCLoginInput{
		Code:  "code",
		State: "state-1",
		Nonce: "nonce-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "ext-42", session.UserID)
	assert.Equal(t, domainauth.RoleFederalAdmin, session.Role)
}

func TestCompleteOIDCLoginValidation(t *testing.T) {
	provider := mockauth.NewMockAuthProvider()
	svc := NewAuthService(AuthServiceOptions{
		Sessions: memstore.NewSessionStore(),
		Provider: provider,
		Roles:    authroles.GroupRoleMapper{},
	})

	cases := []struct {
		name  string
		input CompleteOIDCLoginInput
	}{
		{"missing code", CompleteOIDCLoginInput{State: "s", Nonce: "n"}},
		{"missing state", CompleteOIDCLoginInput{Code: "c", Nonce: "n"}},
		{"missing nonce", CompleteOIDCLoginInput{Code: "c", State: "s"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CompleteOIDCLogin(context.Background(), tc.input)
			assert.Error(t, err)
		})
	}
}

func TestBeginOIDCLoginRequiresProvider(t *testing.T) {
	svc, _ := newTestAuthService(t)
	_, err := svc.BeginOIDCLogin(context.Background(), "http://localhost/callback")
	assert.Error(t, err)
}

func TestUsersListsDirectory(t *testing.T) {
	svc, _ := newTestAuthService(t)
	users, err := svc.Users(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
