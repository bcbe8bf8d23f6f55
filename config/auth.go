package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOIDC uses an OIDC identity provider for authentication.
	AuthModeOIDC AuthMode = "oidc"
	// AuthModeMock uses the seeded demo directory with email login.
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oidc", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oidc, mock)", v)
	}
}

// OIDCConfig contains OIDC provider configuration.
type OIDCConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"schutzraum-portal"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`
}

// GroupConfig maps identity provider groups onto portal roles. Users in
// none of these groups sign in as citizens.
type GroupConfig struct {
	CrisisManager  string `env:"CRISIS_MANAGER"  envDefault:"schutzraum-krisenstab"`
	FederalAdmin   string `env:"FEDERAL_ADMIN"   envDefault:"schutzraum-bund"`
	StateAdmin     string `env:"STATE_ADMIN"     envDefault:"schutzraum-land"`
	MunicipalAdmin string `env:"MUNICIPAL_ADMIN" envDefault:"schutzraum-kommune"`
	Operator       string `env:"OPERATOR"        envDefault:"schutzraum-betreiber"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"mock"`

	// OIDC configuration (used when Mode=oidc).
	OIDC OIDCConfig `envPrefix:"OIDC_"`

	// Groups maps IdP groups onto roles (used when Mode=oidc).
	Groups GroupConfig `envPrefix:"AUTH_GROUP_"`

	// SessionTTL is how long a newly minted session stays valid.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"8h"`
}
