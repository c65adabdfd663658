package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenplate/admin-api/config"
	"github.com/greenplate/admin-api/internal/adapters/devauth"
	"github.com/greenplate/admin-api/internal/adapters/kratos"
)

func TestBuildIdentityProvider(t *testing.T) {
	t.Run("kratos mode", func(t *testing.T) {
		provider, err := BuildIdentityProvider(config.AuthConfig{
			Mode:   config.AuthModeKratos,
			Kratos: config.KratosConfig{PublicURL: "http://kratos:4433"},
		}, nil)

		require.NoError(t, err)
		assert.IsType(t, &kratos.Provider{}, provider)
	})

	t.Run("mock mode", func(t *testing.T) {
		provider, err := BuildIdentityProvider(config.AuthConfig{
			Mode:    config.AuthModeMock,
			DevAuth: config.DevAuthConfig{Email: "dev@tint.edu.in", Password: "dev-password"},
		}, nil)

		require.NoError(t, err)
		assert.IsType(t, &devauth.Provider{}, provider)
	})

	t.Run("kratos mode without a public URL", func(t *testing.T) {
		_, err := BuildIdentityProvider(config.AuthConfig{Mode: config.AuthModeKratos}, nil)
		assert.Error(t, err)
	})

	t.Run("unsupported mode", func(t *testing.T) {
		_, err := BuildIdentityProvider(config.AuthConfig{Mode: "oidc"}, nil)
		assert.Error(t, err)
	})
}
