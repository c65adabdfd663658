package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthModeUnmarshalText(t *testing.T) {
	tests := []struct {
		input       string
		expected    AuthMode
		expectError bool
	}{
		{input: "kratos", expected: AuthModeKratos},
		{input: "KRATOS", expected: AuthModeKratos},
		{input: "mock", expected: AuthModeMock},
		{input: "Mock", expected: AuthModeMock},
		{input: "oidc", expectError: true},
		{input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var mode AuthMode
			err := mode.UnmarshalText([]byte(tt.input))
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestParseFromEnv(t *testing.T) {
	t.Setenv("TENANT_ID", "tint-college")
	t.Setenv("AUTH_MODE", "mock")
	t.Setenv("AUTH_CALL_TIMEOUT", "3s")
	t.Setenv("DB_PORT", "5433")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()
	require.NoError(t, cfg.Tenant.Validate())

	assert.Equal(t, "tint-college", cfg.Tenant.ID)
	assert.Equal(t, AuthModeMock, cfg.Auth.Mode)
	assert.Equal(t, 3*time.Second, cfg.Auth.CallTimeout)
	assert.Equal(t, 5433, cfg.Postgres.Port)

	// Untouched values keep their defaults.
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "/login", cfg.HTTP.LoginPath)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.Auth.RevalidateInterval)
	assert.False(t, cfg.Redis.UseSentinel)
}

func TestTenantValidate(t *testing.T) {
	var tenant TenantConfig
	assert.Error(t, tenant.Validate())

	tenant.ID = "tint-college"
	assert.NoError(t, tenant.Validate())
}

func TestAuthConfigSanitize(t *testing.T) {
	a := AuthConfig{CallTimeout: -time.Second, TokenTTL: 0, RevalidateInterval: -time.Minute}
	a.Sanitize()

	assert.Equal(t, 10*time.Second, a.CallTimeout)
	assert.Equal(t, 12*time.Hour, a.TokenTTL)
	assert.Equal(t, 5*time.Minute, a.RevalidateInterval)
}

func TestHTTPConfigSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty falls back", input: "", expected: "/login"},
		{name: "relative falls back", input: "login", expected: "/login"},
		{name: "rooted path kept", input: "/admin/login", expected: "/admin/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HTTPConfig{LoginPath: tt.input, ShutdownTimeout: time.Second}
			h.Sanitize()
			assert.Equal(t, tt.expected, h.LoginPath)
		})
	}
}

func TestDetectDevMode(t *testing.T) {
	t.Run("APP_ENV=development enables dev mode", func(t *testing.T) {
		t.Setenv("APP_ENV", "Development")
		var cfg AppConfig
		cfg.Sanitize()
		assert.True(t, cfg.IsDev)
	})

	t.Run("production stays off", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		var cfg AppConfig
		cfg.Sanitize()
		assert.False(t, cfg.IsDev)
	})
}
