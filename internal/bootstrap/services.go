package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/zivilschutz/schutzraum-api/config"
	"github.com/zivilschutz/schutzraum-api/internal/adapters/memstore"
	"github.com/zivilschutz/schutzraum-api/internal/devseed"
	"github.com/zivilschutz/schutzraum-api/internal/service"
)

// ServiceContainer holds every service the HTTP layer depends on.
type ServiceContainer struct {
	Auth          *service.AuthService
	Shelters      *service.ShelterService
	Notifications *service.NotificationService
	Dashboard     *service.DashboardService
	Crisis        *service.CrisisService
	Analytics     *service.AnalyticsService
	Geo           *service.GeoService
}

// ServiceDeps groups dependencies for building the service container.
type ServiceDeps struct {
	Config      config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices builds the full service container. The shelter and
// notification repositories are seeded with the demo dataset; only
// sessions move to Redis when it is configured.
func NewServices(deps ServiceDeps) (*ServiceContainer, error) {
	authSvc, err := BuildAuthService(AuthDeps{
		Auth:        deps.Config.Auth,
		Demo:        deps.Config.Demo,
		RedisClient: deps.RedisClient,
		Logger:      deps.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build auth service: %w", err)
	}

	shelterRepo := memstore.NewShelterRepo(devseed.Shelters())
	notificationRepo := memstore.NewNotificationRepo(devseed.Notifications())
	crisisRepo := memstore.NewCrisisRepo()

	return &ServiceContainer{
		Auth:          authSvc,
		Shelters:      service.NewShelterService(service.ShelterServiceOptions{Shelters: shelterRepo}),
		Notifications: service.NewNotificationService(service.NotificationServiceOptions{Notifications: notificationRepo}),
		Dashboard:     service.NewDashboardService(service.DashboardServiceOptions{Shelters: shelterRepo}),
		Crisis:        service.NewCrisisService(service.CrisisServiceOptions{Crisis: crisisRepo}),
		Analytics:     service.NewAnalyticsService(service.AnalyticsServiceOptions{Shelters: shelterRepo}),
		Geo:           service.NewGeoService(),
	}, nil
}
