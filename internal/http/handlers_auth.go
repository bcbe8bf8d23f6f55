package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/zivilschutz/schutzraum-api/internal/domain/auth"
	"github.com/zivilschutz/schutzraum-api/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, email string) (*domainauth.Session, error)
	BeginOIDCLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	CompleteOIDCLogin(ctx context.Context, input service.CompleteOIDCLoginInput) (*domainauth.Session, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Users(ctx context.Context) ([]domainauth.Identity, error)
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// emailLoginRequest is the body of the demo email login endpoint.
type emailLoginRequest struct {
	Email string `json:"email"`
}

// EmailLogin handles the demo email login endpoint.
// POST /api/auth/login with {"email": "..."}.
func (h *AuthHandlers) EmailLogin(w http.ResponseWriter, r *http.Request) {
	var req emailLoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	session, err := h.Svc.Login(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, service.ErrUnknownEmail) {
			WriteError(w, ErrorParams{
				Code:    http.StatusUnauthorized,
				ErrCode: "unknown_email",
				Err:     err,
			})
			return
		}
		h.logger().ErrorContext(r.Context(), "email login failed", slog.Any("error", err))
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_failed",
			Err:     errors.New("login failed"),
		})
		return
	}

	h.setSessionCookie(w, r, *session)
	WriteJSON(w, http.StatusOK, sessionResponse(session))
}

// OIDCLogin handles the browser login initiation endpoint.
// GET /auth/login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) OIDCLogin(w http.ResponseWriter, r *http.Request) {
	redirectURI := safeRedirectPath(r.URL.Query().Get("redirect_uri"))

	callbackURL := requestScheme(r) + "://" + r.Host + "/auth/callback"
	result, err := h.Svc.BeginOIDCLogin(r.Context(), callbackURL)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_failed",
			Err:     err,
		})
		return
	}

	h.setOAuthCookies(w, r, oauthCookieParams{State: result.State, Nonce: result.Nonce, RedirectURI: redirectURI})
	http.Redirect(w, r, result.AuthURL, http.StatusFound)
}

// Callback handles the OIDC callback endpoint.
// GET /auth/callback?code=<code>&state=<state>.
func (h *AuthHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_code",
			Err:     errors.New("authorization code is required"),
		})
		return
	}
	if state == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_state",
			Err:     errors.New("state parameter is required"),
		})
		return
	}

	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value != state {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_state",
			Err:     errors.New("invalid or missing state parameter"),
		})
		return
	}
	nonceCookie, err := r.Cookie("oauth_nonce")
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_nonce",
			Err:     errors.New("missing nonce parameter"),
		})
		return
	}

	session, err := h.Svc.CompleteOIDCLogin(r.Context(), service.CompleteOIDCLoginInput{
		Code:  code,
		State: state,
		Nonce: nonceCookie.Value,
	})
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_completion_failed",
			Err:     err,
		})
		return
	}

	h.setSessionCookie(w, r, *session)
	h.clearCookie(w, r, "oauth_state")
	h.clearCookie(w, r, "oauth_nonce")

	redirectURI := h.getPostLoginRedirect(w, r)
	http.Redirect(w, r, redirectURI, http.StatusFound)
}

// Logout handles the logout endpoint.
// POST /api/auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionCookie, err := r.Cookie(SessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), sessionCookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", slog.Any("error", logoutErr))
		}
	}

	h.clearCookie(w, r, SessionCookieName)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// Status returns the current authentication status.
// GET /api/auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	session, err := h.Svc.GetSession(r.Context(), sessionCookie.Value)
	if err != nil {
		// The store did not answer; report the outage rather than
		// pretending the caller is signed out.
		WriteError(w, ErrorParams{
			Code:    http.StatusServiceUnavailable,
			ErrCode: "session_unavailable",
			Err:     errors.New("session lookup did not resolve"),
		})
		return
	}
	if session == nil {
		h.clearCookie(w, r, SessionCookieName)
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	WriteJSON(w, http.StatusOK, sessionResponse(session))
}

// ListUsers returns all registered identities for user management.
// GET /api/users.
func (h *AuthHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.Users(r.Context())
	if err != nil {
		RenderAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"data": users})
}

// sessionResponse shapes the authenticated-session payload shared by
// login and status.
func sessionResponse(s *domainauth.Session) map[string]any {
	return map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"id":           s.UserID,
			"name":         s.Name,
			"email":        s.Email,
			"role":         s.Role,
			"municipality": s.Municipality,
			"state":        s.State,
		},
		"expires_at": s.ExpiresAt,
	}
}

// requestScheme infers the external scheme, honoring proxies.
func requestScheme(r *http.Request) string {
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		return "https"
	}
	return "http"
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors key attributes (Secure, Path, Domain, SameSite) used when setting cookies
// to maximize compatibility across browsers during deletion.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// oauthCookieParams groups values needed to set OAuth cookies.
type oauthCookieParams struct {
	State       string
	Nonce       string
	RedirectURI string
}

// setOAuthCookies stores OAuth state, nonce, and the post-login redirect in secure cookies.
func (h *AuthHandlers) setOAuthCookies(w http.ResponseWriter, r *http.Request, p oauthCookieParams) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	for name, value := range map[string]string{
		"oauth_state":         p.State,
		"oauth_nonce":         p.Nonce,
		"post_login_redirect": p.RedirectURI,
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    value,
			Path:     "/",
			Domain:   h.CookieDomain,
			HttpOnly: true,
			Secure:   isSecure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   600, // 10 minutes
		})
	}
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// getPostLoginRedirect returns the post-login redirect URL and clears the cookie.
func (h *AuthHandlers) getPostLoginRedirect(w http.ResponseWriter, r *http.Request) string {
	redirectURI := "/"
	if redirectCookie, err := r.Cookie("post_login_redirect"); err == nil {
		candidate := redirectCookie.Value
		// Defensive re-validation: allow only relative paths
		u, parseErr := url.Parse(candidate)
		if parseErr == nil && !u.IsAbs() && u.Host == "" && strings.HasPrefix(u.Path, "/") {
			redirectURI = candidate
		}
		h.clearCookie(w, r, "post_login_redirect")
	}
	return redirectURI
}
