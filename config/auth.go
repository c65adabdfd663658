package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeKratos verifies credentials against an Ory Kratos instance.
	AuthModeKratos AuthMode = "kratos"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "kratos", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: kratos, mock)", v)
	}
}

// KratosConfig contains Ory Kratos identity provider configuration.
type KratosConfig struct {
	// PublicURL is the base URL of the Kratos public (self-service) API.
	PublicURL string `env:"PUBLIC_URL" envDefault:"http://localhost:4433"`
}

// DevAuthConfig controls mock/dev authentication accounts.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	Email    string `env:"EMAIL"    envDefault:"dev@tint.edu.in"`
	Password string `env:"PASSWORD" envDefault:"dev-password"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which identity provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"kratos"`

	// Kratos configuration (used when Mode=kratos).
	Kratos KratosConfig `envPrefix:"KRATOS_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// CallTimeout bounds every identity-provider and allow-list call made
	// during an authorization decision. A hung remote call must never leave
	// the session manager loading forever.
	CallTimeout time.Duration `env:"AUTH_CALL_TIMEOUT" envDefault:"10s"`

	// TokenTTL is how long a persisted access token remains valid in the
	// token store when the provider does not supply an expiry.
	TokenTTL time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"12h"`

	// RevalidateInterval is how often the persisted session is re-checked
	// against the provider and the current allow-list while the process runs.
	RevalidateInterval time.Duration `env:"AUTH_REVALIDATE_INTERVAL" envDefault:"5m"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.CallTimeout <= 0 {
		a.CallTimeout = 10 * time.Second
	}
	if a.TokenTTL <= 0 {
		a.TokenTTL = 12 * time.Hour
	}
	if a.RevalidateInterval <= 0 {
		a.RevalidateInterval = 5 * time.Minute
	}
}
