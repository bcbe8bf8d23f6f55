package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/zivilschutz/schutzraum-api/internal/domain/auth"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SessionResolver resolves a session ID to a session. Implemented by
// service.AuthService.
type SessionResolver interface {
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
}

// Guard returns a middleware that restores the session and evaluates
// the route's access rule. Evaluation order is fixed: authentication
// first, then the role allow-list, then the minimum rank.
//
// Decisions map to responses as follows:
//   - pending (session lookup did not resolve): 503, never a redirect;
//   - redirect to login: 401 JSON for API calls, 303 to
//     /auth/login?redirect_uri=<original path> for browser navigations;
//   - unauthorized: 403 with a fixed body that discloses neither the
//     required role nor the rule;
//   - allowed: the session (if any) is placed on the request context.
func Guard(auth SessionResolver, rule domainauth.Rule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := resolveSessionState(r, auth)

			switch domainauth.Evaluate(state.State, rule) {
			case domainauth.DecisionAllowed:
				ctx := r.Context()
				if state.Identity != nil {
					ctx = SetSessionInContext(ctx, state.session)
				}
				next.ServeHTTP(w, r.WithContext(ctx))

			case domainauth.DecisionPending:
				// The store did not answer; an authorization decision
				// must not be guessed from an unresolved session.
				WriteError(w, ErrorParams{
					Code:    http.StatusServiceUnavailable,
					ErrCode: "session_unavailable",
					Err:     errors.New("session lookup did not resolve"),
				})

			case domainauth.DecisionRedirectLogin:
				if isBrowserRequest(r) {
					redirectToLogin(w, r)
					return
				}
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("authentication required"),
				})

			case domainauth.DecisionRedirectUnauthorized:
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "insufficient_permissions",
					Err:     errors.New("insufficient permissions"),
				})
			}
		})
	}
}

// resolveSessionState performs the per-request session restore and
// reports it as guard input. A store failure leaves Ready false.
func resolveSessionState(r *http.Request, auth SessionResolver) sessionState {
	state := sessionState{State: domainauth.State{Ready: true}}

	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return state
	}

	session, err := auth.GetSession(r.Context(), cookie.Value)
	if err != nil {
		state.Ready = false
		return state
	}
	if session != nil {
		state.Identity = session.Identity()
		state.session = session
	}
	return state
}

// sessionState is domainauth.State plus the full session record.
type sessionState struct {
	domainauth.State
	session *domainauth.Session
}

// SessionCookieName is the cookie carrying the session ID.
const SessionCookieName = "session_id"

// isBrowserRequest reports whether a request came from browser
// navigation rather than an API client. API routes are always JSON.
func isBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	return strings.Contains(accept, "text/html")
}

// redirectToLogin redirects browser requests to the login page with the
// current URL as redirect_uri so the user returns where they started.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	redirectPath := safeRedirectPath(r.URL.RequestURI())
	loginURL := "/auth/login?redirect_uri=" + url.QueryEscape(redirectPath)
	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}
