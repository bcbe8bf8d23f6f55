package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	domainauth "github.com/zivilschutz/schutzraum-api/internal/domain/auth"
	"github.com/zivilschutz/schutzraum-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth          *service.AuthService
	Shelters      *service.ShelterService
	Notifications *service.NotificationService
	Dashboard     *service.DashboardService
	Crisis        *service.CrisisService
	Analytics     *service.AnalyticsService
	Geo           *service.GeoService
	CookieDomain  string
	Logger        *slog.Logger
}

// NewRouter creates and configures the HTTP router. Every route is
// wrapped in the guard with its static access rule; the rule set is the
// single place where the portal's authorization surface is declared.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	guard := func(rule domainauth.Rule) func(http.Handler) http.Handler {
		return Guard(services.Auth, rule)
	}

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	shelterHandlers := &ShelterHandlers{Svc: services.Shelters}
	notificationHandlers := &NotificationHandlers{Svc: services.Notifications}
	dashboardHandlers := &DashboardHandlers{Svc: services.Dashboard}
	crisisHandlers := &CrisisHandlers{Svc: services.Crisis}
	analyticsHandlers := &AnalyticsHandlers{Svc: services.Analytics}
	geoHandlers := &GeoHandlers{Svc: services.Geo}

	registerAuthRoutes(mux, authHandlers, guard)
	registerShelterRoutes(mux, shelterHandlers, guard)
	registerNotificationRoutes(mux, notificationHandlers, guard)
	registerDashboardRoutes(mux, dashboardHandlers, guard)
	registerCrisisRoutes(mux, crisisHandlers, guard)
	registerGeoRoutes(mux, geoHandlers, guard)
	registerMasterDataRoutes(mux)

	mux.Handle("POST /api/analytics/query",
		guard(domainauth.MinRole(domainauth.RoleMunicipalAdmin))(http.HandlerFunc(analyticsHandlers.Query)))

	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)

	// Unmatched API paths get a JSON 404 instead of the default text body.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errors.New("no such route"),
		})
	})

	return mux
}

type guardFn func(domainauth.Rule) func(http.Handler) http.Handler

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, guard guardFn) {
	mux.HandleFunc("POST /api/auth/login", h.EmailLogin)
	mux.HandleFunc("GET /api/auth/status", h.Status)
	mux.Handle("POST /api/auth/logout",
		guard(domainauth.Authenticated)(http.HandlerFunc(h.Logout)))
	mux.Handle("GET /api/users",
		guard(domainauth.MinRole(domainauth.RoleMunicipalAdmin))(http.HandlerFunc(h.ListUsers)))

	// Browser OIDC flow.
	mux.HandleFunc("GET /auth/login", h.OIDCLogin)
	mux.HandleFunc("GET /auth/callback", h.Callback)
}

func registerShelterRoutes(mux *http.ServeMux, h *ShelterHandlers, guard guardFn) {
	// Public catalog. Finding a shelter must work without an account.
	mux.HandleFunc("GET /api/shelters", h.List)
	mux.HandleFunc("GET /api/shelters/search", h.Search)
	mux.HandleFunc("GET /api/shelters/nearest", h.Nearest)
	mux.HandleFunc("GET /api/shelters/{id}", h.Get)

	// Operator maintenance.
	operator := guard(domainauth.MinRole(domainauth.RoleOperator))
	mux.Handle("GET /api/operator/shelters", operator(http.HandlerFunc(h.MyShelters)))
	mux.Handle("POST /api/shelters", operator(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/shelters/{id}", operator(http.HandlerFunc(h.Update)))

	// Administrative approval workflow.
	admin := guard(domainauth.MinRole(domainauth.RoleMunicipalAdmin))
	mux.Handle("GET /api/shelters/pending", admin(http.HandlerFunc(h.Pending)))
	mux.Handle("POST /api/shelters/{id}/approve", admin(http.HandlerFunc(h.Approve)))
	mux.Handle("POST /api/shelters/{id}/reject", admin(http.HandlerFunc(h.Reject)))
}

func registerNotificationRoutes(mux *http.ServeMux, h *NotificationHandlers, guard guardFn) {
	authed := guard(domainauth.Authenticated)
	mux.Handle("GET /api/notifications", authed(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/notifications/unread-count", authed(http.HandlerFunc(h.UnreadCount)))
	mux.Handle("POST /api/notifications/{id}/read", authed(http.HandlerFunc(h.MarkRead)))
	mux.Handle("POST /api/notifications/read-all", authed(http.HandlerFunc(h.MarkAllRead)))
}

func registerDashboardRoutes(mux *http.ServeMux, h *DashboardHandlers, guard guardFn) {
	admin := guard(domainauth.MinRole(domainauth.RoleMunicipalAdmin))
	mux.Handle("GET /api/dashboard/stats", admin(http.HandlerFunc(h.Stats)))
	mux.Handle("GET /api/dashboard/stats/{state}", admin(http.HandlerFunc(h.StatsByState)))
	mux.Handle("GET /api/dashboard/regional", admin(http.HandlerFunc(h.Regional)))
}

func registerCrisisRoutes(mux *http.ServeMux, h *CrisisHandlers, guard guardFn) {
	// Status feeds the public crisis banner; the mutations use the
	// crisis allow-list, which is independent from the rank ladder. A
	// state admin outranks nobody here.
	mux.HandleFunc("GET /api/crisis/status", h.Status)

	crisis := guard(domainauth.AnyOf(domainauth.RoleCrisisManager, domainauth.RoleFederalAdmin))
	mux.Handle("POST /api/crisis/activate", crisis(http.HandlerFunc(h.Activate)))
	mux.Handle("POST /api/crisis/deactivate", crisis(http.HandlerFunc(h.Deactivate)))
	mux.Handle("POST /api/crisis/broadcast", crisis(http.HandlerFunc(h.Broadcast)))
}

func registerGeoRoutes(mux *http.ServeMux, h *GeoHandlers, _ guardFn) {
	mux.HandleFunc("GET /api/geo/geocode", h.Geocode)
	mux.HandleFunc("GET /api/geo/reverse", h.ReverseGeocode)
	mux.HandleFunc("GET /api/geo/route", h.Route)
}

func registerMasterDataRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/masterdata/shelter-types", MasterDataShelterTypes)
	mux.HandleFunc("GET /api/masterdata/shelter-statuses", MasterDataShelterStatuses)
	mux.HandleFunc("GET /api/masterdata/german-states", MasterDataGermanStates)
}
