package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/zivilschutz/schutzraum-api/config"
	"github.com/zivilschutz/schutzraum-api/internal/adapters/authroles"
	"github.com/zivilschutz/schutzraum-api/internal/adapters/memstore"
	oidcadapter "github.com/zivilschutz/schutzraum-api/internal/adapters/oidc"
	redisadapter "github.com/zivilschutz/schutzraum-api/internal/adapters/redis"
	"github.com/zivilschutz/schutzraum-api/internal/devseed"
	"github.com/zivilschutz/schutzraum-api/internal/ports"
	"github.com/zivilschutz/schutzraum-api/internal/service"
)

// AuthDeps groups what BuildAuthService needs from the wider bootstrap.
type AuthDeps struct {
	Auth        config.AuthConfig
	Demo        config.DemoConfig
	RedisClient redis.UniversalClient // nil means in-memory sessions
	Logger      *slog.Logger
}

// BuildAuthService wires the auth service for the configured mode. Mock
// mode serves the demo accounts over email login only; OIDC mode adds
// the provider round-trip and maps IdP groups onto portal roles. Both
// modes keep the same directory so /api/users stays consistent.
func BuildAuthService(deps AuthDeps) (*service.AuthService, error) {
	var sessions ports.SessionStore
	if deps.RedisClient != nil {
		sessions = redisadapter.NewSessionStore(deps.RedisClient)
	} else {
		sessions = memstore.NewSessionStore()
	}

	directory := memstore.NewIdentityDirectory(devseed.Users(), deps.Demo.DirectoryLatency)

	opts := service.AuthServiceOptions{
		Directory:  directory,
		Sessions:   sessions,
		SessionTTL: deps.Auth.SessionTTL,
	}

	if deps.Auth.Mode == config.AuthModeOIDC {
		provider, err := oidcadapter.NewProvider(oidcadapter.ProviderConfig{
			ClientID:     deps.Auth.OIDC.ClientID,
			ClientSecret: deps.Auth.OIDC.ClientSecret,
			RedirectURL:  deps.Auth.OIDC.RedirectURL,
			Scope:        deps.Auth.OIDC.Scope,
			DiscoveryURL: deps.Auth.OIDC.DiscoveryURL,
			LogoutURL:    deps.Auth.OIDC.LogoutURL,
		})
		if err != nil {
			return nil, fmt.Errorf("configure OIDC provider: %w", err)
		}
		opts.Provider = provider
		opts.Roles = authroles.GroupRoleMapper{
			CrisisManagerGroup: deps.Auth.Groups.CrisisManager,
			FederalAdminGroup:  deps.Auth.Groups.FederalAdmin,
			StateAdminGroup:    deps.Auth.Groups.StateAdmin,
			MunicipalGroup:     deps.Auth.Groups.MunicipalAdmin,
			OperatorGroup:      deps.Auth.Groups.Operator,
		}
	}

	if deps.Logger != nil {
		deps.Logger.Info("auth service configured",
			"mode", string(deps.Auth.Mode),
			"session_ttl", deps.Auth.SessionTTL.String(),
			"persistent_sessions", deps.RedisClient != nil,
		)
	}

	return service.NewAuthService(opts), nil
}
