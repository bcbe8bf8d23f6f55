package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/zivilschutz/schutzraum-api/internal/domain/auth"
	"github.com/zivilschutz/schutzraum-api/internal/service"
)

// mockAuthService is a test double for service.AuthService.
type mockAuthService struct {
	loginFunc      func(ctx context.Context, email string) (*domainauth.Session, error)
	beginFunc      func(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	completeFunc   func(ctx context.Context, input service.CompleteOIDCLoginInput) (*domainauth.Session, error)
	getSessionFunc func(ctx context.Context, sessionID string) (*domainauth.Session, error)
	logoutFunc     func(ctx context.Context, sessionID string) error
	usersFunc      func(ctx context.Context) ([]domainauth.Identity, error)
}

func testSession() *domainauth.Session {
	return &domainauth.Session{
		ID:        "test-session-id",
		UserID:    "user-1",
		Name:      "Maria Schmidt",
		Email:     "buerger@demo.de",
		Role:      domainauth.RoleCitizen,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func (m *mockAuthService) Login(ctx context.Context, email string) (*domainauth.Session, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email)
	}
	return testSession(), nil
}

func (m *mockAuthService) BeginOIDCLogin(
	ctx context.Context,
	redirectURL string,
) (*service.BeginLoginResult, error) {
	if m.beginFunc != nil {
		return m.beginFunc(ctx, redirectURL)
	}
	return &service.BeginLoginResult{
		AuthURL: "https://idp.example.de/auth?state=test-state&nonce=test-nonce",
		State:   "test-state",
		Nonce:   "test-nonce",
	}, nil
}

func (m *mockAuthService) CompleteOIDCLogin(
	ctx context.Context,
	input service.CompleteOIDCLoginInput,
) (*domainauth.Session, error) {
	if m.completeFunc != nil {
		return m.completeFunc(ctx, input)
	}
	return testSession(), nil
}

func (m *mockAuthService) GetSession(
	ctx context.Context,
	sessionID string,
) (*domainauth.Session, error) {
	if m.getSessionFunc != nil {
		return m.getSessionFunc(ctx, sessionID)
	}
	return testSession(), nil
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, sessionID)
	}
	return nil
}

func (m *mockAuthService) Users(ctx context.Context) ([]domainauth.Identity, error) {
	if m.usersFunc != nil {
		return m.usersFunc(ctx)
	}
	return nil, nil
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	resp := w.Result()
	defer resp.Body.Close()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestEmailLogin_Success(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}}

	body := strings.NewReader(`{"email": "buerger@demo.de"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	w := httptest.NewRecorder()

	handlers.EmailLogin(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
	assert.Contains(t, w.Body.String(), "buerger@demo.de")

	cookie := findCookie(t, w, SessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "test-session-id", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Positive(t, cookie.MaxAge)
}

func TestEmailLogin_UnknownEmail(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{
		loginFunc: func(_ context.Context, _ string) (*domainauth.Session, error) {
			return nil, service.ErrUnknownEmail
		},
	}}

	body := strings.NewReader(`{"email": "niemand@demo.de"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	w := httptest.NewRecorder()

	handlers.EmailLogin(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unknown_email")
	assert.Nil(t, findCookie(t, w, SessionCookieName))
}

func TestEmailLogin_InvalidBody(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handlers.EmailLogin(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_json")
}

func TestStatus_NoCookie(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	w := httptest.NewRecorder()

	handlers.Status(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}

func TestStatus_UnknownSessionClearsCookie(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{
		getSessionFunc: func(_ context.Context, _ string) (*domainauth.Session, error) {
			return nil, nil
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "expired"})
	w := httptest.NewRecorder()

	handlers.Status(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	cookie := findCookie(t, w, SessionCookieName)
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge)
}

func TestStatus_StoreOutageIs503(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{
		getSessionFunc: func(_ context.Context, _ string) (*domainauth.Session, error) {
			return nil, errors.New("redis down")
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sid-1"})
	w := httptest.NewRecorder()

	handlers.Status(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "session_unavailable")
}

func TestStatus_AuthenticatedSession(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "test-session-id"})
	w := httptest.NewRecorder()

	handlers.Status(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
	assert.Contains(t, w.Body.String(), `"role":"citizen"`)
}

func TestLogout_ClearsCookieAndInvalidatesSession(t *testing.T) {
	var loggedOut string
	handlers := &AuthHandlers{Svc: &mockAuthService{
		logoutFunc: func(_ context.Context, sessionID string) error {
			loggedOut = sessionID
			return nil
		},
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sid-1"})
	w := httptest.NewRecorder()

	handlers.Logout(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sid-1", loggedOut)

	cookie := findCookie(t, w, SessionCookieName)
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge)
}

func TestLogout_WithoutCookieStillSucceeds(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()

	handlers.Logout(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOIDCLogin_RedirectsToProvider(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}}

	req := httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=/dashboard", nil)
	w := httptest.NewRecorder()

	handlers.OIDCLogin(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "https://idp.example.de/auth")

	resp := w.Result()
	defer resp.Body.Close()
	assert.Len(t, resp.Cookies(), 3) // oauth_state, oauth_nonce, post_login_redirect
}

func TestOIDCLogin_RejectsAbsoluteRedirect(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}}

	req := httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=https://evil.example/", nil)
	w := httptest.NewRecorder()

	handlers.OIDCLogin(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	cookie := findCookie(t, w, "post_login_redirect")
	require.NotNil(t, cookie)
	assert.Equal(t, "/", cookie.Value)
}

func TestCallback_Success(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}}

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=test-code&state=test-state", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "test-state"})
	req.AddCookie(&http.Cookie{Name: "oauth_nonce", Value: "test-nonce"})
	req.AddCookie(&http.Cookie{Name: "post_login_redirect", Value: "/dashboard"})
	w := httptest.NewRecorder()

	handlers.Callback(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	cookie := findCookie(t, w, SessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "test-session-id", cookie.Value)
}

func TestCallback_MissingCode(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}}

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?state=test-state", nil)
	w := httptest.NewRecorder()

	handlers.Callback(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_code")
}

func TestCallback_StateMismatch(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}}

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=test-code&state=forged", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "test-state"})
	w := httptest.NewRecorder()

	handlers.Callback(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_state")
}

func TestListUsers(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{
		usersFunc: func(_ context.Context) ([]domainauth.Identity, error) {
			return []domainauth.Identity{
				{ID: "user-1", Email: "buerger@demo.de", Role: domainauth.RoleCitizen},
				{ID: "user-6", Email: "krisenstab@demo.de", Role: domainauth.RoleCrisisManager},
			}, nil
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	w := httptest.NewRecorder()

	handlers.ListUsers(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "krisenstab@demo.de")
}
