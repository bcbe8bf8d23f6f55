package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zivilschutz/schutzraum-api/internal/adapters/memstore"
	domainauth "github.com/zivilschutz/schutzraum-api/internal/domain/auth"
	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
	"github.com/zivilschutz/schutzraum-api/internal/service"
	"github.com/zivilschutz/schutzraum-api/internal/testutil"
)

// newTestRouter wires the full router over in-memory stores so route
// rules are exercised end to end.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	directory := memstore.NewIdentityDirectory([]domainauth.Identity{
		*testutil.Identity(domainauth.RoleCitizen),
		*testutil.Identity(domainauth.RoleOperator),
		*testutil.Identity(domainauth.RoleMunicipalAdmin),
		*testutil.Identity(domainauth.RoleStateAdmin),
		*testutil.Identity(domainauth.RoleCrisisManager),
	}, 0)
	shelterRepo := memstore.NewShelterRepo([]*model.Shelter{
		testutil.NewShelter("shelter-berlin-001").Build(),
		testutil.NewShelter("shelter-munich-008").WithCity("München").WithState("Bayern").
			WithCoordinates(48.1374, 11.5755).Build(),
	})

	auth := service.NewAuthService(service.AuthServiceOptions{
		Directory: directory,
		Sessions:  memstore.NewSessionStore(),
	})

	return NewRouter(RouterServices{
		Auth:          auth,
		Shelters:      service.NewShelterService(service.ShelterServiceOptions{Shelters: shelterRepo}),
		Notifications: service.NewNotificationService(service.NotificationServiceOptions{Notifications: memstore.NewNotificationRepo(nil)}),
		Dashboard:     service.NewDashboardService(service.DashboardServiceOptions{Shelters: shelterRepo}),
		Crisis:        service.NewCrisisService(service.CrisisServiceOptions{Crisis: memstore.NewCrisisRepo()}),
		Analytics:     service.NewAnalyticsService(service.AnalyticsServiceOptions{Shelters: shelterRepo}),
		Geo:           service.NewGeoService(),
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

// loginAs signs in through the email endpoint and returns the session cookie.
func loginAs(t *testing.T, router http.Handler, role domainauth.Role) *http.Cookie {
	t.Helper()

	body := strings.NewReader(`{"email": "` + string(role) + `@demo.de"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	resp := w.Result()
	defer resp.Body.Close()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

func doRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouterHealthz(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterPublicCatalogNeedsNoSession(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/shelters",
		"/api/shelters/search?q=bunker",
		"/api/shelters/nearest?lat=52.52&lng=13.40",
		"/api/shelters/shelter-berlin-001",
		"/api/crisis/status",
		"/api/geo/geocode?address=Brunnenstra%C3%9Fe+105",
		"/api/masterdata/german-states",
	} {
		w := doRequest(router, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, "path %s", path)
	}
}

func TestRouterNotificationsRequireSession(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/notifications", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	cookie := loginAs(t, router, domainauth.RoleCitizen)
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.AddCookie(cookie)
	w = doRequest(router, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterDashboardRequiresMunicipalAdmin(t *testing.T) {
	router := newTestRouter(t)

	citizen := loginAs(t, router, domainauth.RoleCitizen)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	req.AddCookie(citizen)
	w := doRequest(router, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := loginAs(t, router, domainauth.RoleMunicipalAdmin)
	req = httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	req.AddCookie(admin)
	w = doRequest(router, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalShelters int `json:"total_shelters"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalShelters)
}

func TestRouterCrisisAllowListIndependentOfRank(t *testing.T) {
	router := newTestRouter(t)
	body := `{"regions": ["Berlin"]}`

	// State admin ranks above municipal admin but is not on the crisis
	// allow-list.
	stateAdmin := loginAs(t, router, domainauth.RoleStateAdmin)
	req := httptest.NewRequest(http.MethodPost, "/api/crisis/activate", strings.NewReader(body))
	req.AddCookie(stateAdmin)
	w := doRequest(router, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	crisisManager := loginAs(t, router, domainauth.RoleCrisisManager)
	req = httptest.NewRequest(http.MethodPost, "/api/crisis/activate", strings.NewReader(body))
	req.AddCookie(crisisManager)
	w = doRequest(router, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":true`)

	// The banner endpoint reflects activation for everyone.
	w = doRequest(router, httptest.NewRequest(http.MethodGet, "/api/crisis/status", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":true`)
}

func TestRouterShelterCreateRequiresOperator(t *testing.T) {
	router := newTestRouter(t)
	body := `{
		"name": "Neuer Schutzraum",
		"type": "basement",
		"capacity": 120,
		"address": {"street": "Teststraße 1", "city": "Berlin", "postal_code": "10115", "state": "Berlin"},
		"coordinates": {"lat": 52.53, "lng": 13.39}
	}`

	citizen := loginAs(t, router, domainauth.RoleCitizen)
	req := httptest.NewRequest(http.MethodPost, "/api/shelters", strings.NewReader(body))
	req.AddCookie(citizen)
	w := doRequest(router, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	operator := loginAs(t, router, domainauth.RoleOperator)
	req = httptest.NewRequest(http.MethodPost, "/api/shelters", strings.NewReader(body))
	req.AddCookie(operator)
	w = doRequest(router, req)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"approval_status":"pending"`)
}

func TestRouterLogoutInvalidatesSession(t *testing.T) {
	router := newTestRouter(t)

	cookie := loginAs(t, router, domainauth.RoleCitizen)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookie)
	w := doRequest(router, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.AddCookie(cookie)
	w = doRequest(router, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouterUnknownRouteIsJSON404(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}
