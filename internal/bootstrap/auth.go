package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/greenplate/admin-api/config"
	"github.com/greenplate/admin-api/internal/adapters/devauth"
	"github.com/greenplate/admin-api/internal/adapters/kratos"
	"github.com/greenplate/admin-api/internal/ports"
)

// BuildIdentityProvider constructs the identity provider selected by
// AUTH_MODE.
//
//nolint:ireturn // callers program against the port, not a concrete provider.
func BuildIdentityProvider(cfg config.AuthConfig, logger *slog.Logger) (ports.IdentityProvider, error) {
	switch cfg.Mode {
	case config.AuthModeKratos:
		provider, err := kratos.NewProvider(kratos.ProviderConfig{PublicURL: cfg.Kratos.PublicURL})
		if err != nil {
			return nil, fmt.Errorf("build kratos provider: %w", err)
		}
		if logger != nil {
			logger.Info("identity provider configured", "mode", "kratos", "public_url", cfg.Kratos.PublicURL)
		}
		return provider, nil

	case config.AuthModeMock:
		provider, err := devauth.NewProvider(devauth.Config{
			Email:    cfg.DevAuth.Email,
			Password: cfg.DevAuth.Password,
		})
		if err != nil {
			return nil, fmt.Errorf("build dev auth provider: %w", err)
		}
		if logger != nil {
			logger.Warn("identity provider configured with mock auth; do not use in production",
				"mode", "mock", "email", cfg.DevAuth.Email)
		}
		return provider, nil

	default:
		return nil, fmt.Errorf("unsupported auth mode: %q", cfg.Mode)
	}
}
