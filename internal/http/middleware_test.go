package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/zivilschutz/schutzraum-api/internal/domain/auth"
)

// stubResolver resolves session IDs from a fixed map; a non-nil err
// simulates a session store outage.
type stubResolver struct {
	sessions map[string]*domainauth.Session
	err      error
}

func (s *stubResolver) GetSession(_ context.Context, sessionID string) (*domainauth.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.sessions[sessionID], nil
}

func resolverWithRole(role domainauth.Role) *stubResolver {
	return &stubResolver{sessions: map[string]*domainauth.Session{
		"sid-1": {
			ID:        "sid-1",
			UserID:    "user-1",
			Email:     "user@demo.de",
			Role:      role,
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestGuardPublicRouteWithoutSession(t *testing.T) {
	h := Guard(&stubResolver{}, domainauth.Public)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/shelters", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuardAPIRequestWithoutSessionGets401(t *testing.T) {
	h := Guard(&stubResolver{}, domainauth.Authenticated)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication_required")
}

func TestGuardBrowserRequestWithoutSessionRedirects(t *testing.T) {
	h := Guard(&stubResolver{}, domainauth.Authenticated)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/dashboard?tab=map", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/auth/login?redirect_uri=%2Fdashboard%3Ftab%3Dmap", w.Header().Get("Location"))
}

func TestGuardStoreOutageIs503NotRedirect(t *testing.T) {
	resolver := &stubResolver{err: errors.New("redis down")}
	h := Guard(resolver, domainauth.Authenticated)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Accept", "text/html")
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sid-1"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "session_unavailable")
	assert.Empty(t, w.Header().Get("Location"))
}

func TestGuardExpiredSessionRedirectsToLogin(t *testing.T) {
	// An unknown session ID resolves to no session, same as expired.
	h := Guard(&stubResolver{}, domainauth.Authenticated)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "gone"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardMinimumRoleBelowRankGets403(t *testing.T) {
	h := Guard(resolverWithRole(domainauth.RoleOperator),
		domainauth.MinRole(domainauth.RoleMunicipalAdmin))(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sid-1"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	// The body must not disclose what role would have been required.
	assert.Contains(t, w.Body.String(), "insufficient_permissions")
	assert.NotContains(t, w.Body.String(), "municipal_admin")
}

func TestGuardMinimumRoleAtOrAboveRankPasses(t *testing.T) {
	for _, role := range []domainauth.Role{
		domainauth.RoleMunicipalAdmin,
		domainauth.RoleStateAdmin,
		domainauth.RoleCrisisManager,
	} {
		h := Guard(resolverWithRole(role),
			domainauth.MinRole(domainauth.RoleMunicipalAdmin))(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sid-1"})
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "role %s", role)
	}
}

func TestGuardAllowListIgnoresRank(t *testing.T) {
	rule := domainauth.AnyOf(domainauth.RoleCrisisManager, domainauth.RoleFederalAdmin)

	// A state admin outranks an operator but is not in the allow-list.
	h := Guard(resolverWithRole(domainauth.RoleStateAdmin), rule)(okHandler())
	req := httptest.NewRequest(http.MethodPost, "/api/crisis/activate", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sid-1"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	h = Guard(resolverWithRole(domainauth.RoleFederalAdmin), rule)(okHandler())
	req = httptest.NewRequest(http.MethodPost, "/api/crisis/activate", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sid-1"})
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuardPutsSessionOnContext(t *testing.T) {
	var got *domainauth.Session
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetUserSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	h := Guard(resolverWithRole(domainauth.RoleCitizen), domainauth.Authenticated)(inner)
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sid-1"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, domainauth.RoleCitizen, got.Role)
}

func TestIsBrowserRequest(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		accept string
		want   bool
	}{
		{name: "api path is never a browser request", path: "/api/shelters", accept: "text/html", want: false},
		{name: "html accept header", path: "/dashboard", accept: "text/html,application/xhtml+xml", want: true},
		{name: "no accept header defaults to browser", path: "/dashboard", accept: "", want: true},
		{name: "json accept header", path: "/dashboard", accept: "application/json", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.want, isBrowserRequest(req))
		})
	}
}

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		candidate string
		want      string
	}{
		{candidate: "", want: "/"},
		{candidate: "/dashboard", want: "/dashboard"},
		{candidate: "/dashboard?tab=map", want: "/dashboard?tab=map"},
		{candidate: "https://evil.example/phish", want: "/"},
		{candidate: "//evil.example/phish", want: "/"},
		{candidate: "dashboard", want: "/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, safeRedirectPath(tt.candidate), "candidate %q", tt.candidate)
	}
}
