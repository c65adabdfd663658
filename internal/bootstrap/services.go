package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/greenplate/admin-api/config"
	redisadapter "github.com/greenplate/admin-api/internal/adapters/redis"
	"github.com/greenplate/admin-api/internal/data"
	"github.com/greenplate/admin-api/internal/service"
)

// ServiceContainer holds the application services built during startup.
type ServiceContainer struct {
	Auth      *service.AuthManager
	Allowlist *service.AllowlistService
	Stalls    *service.StallService
}

// ServiceDeps groups the infrastructure the services are built on.
type ServiceDeps struct {
	Config *config.AppConfig
	DB     *sql.DB
	Redis  goredis.UniversalClient
	Logger *slog.Logger
}

// BuildServices wires repositories, adapters, and services together.
func BuildServices(deps ServiceDeps) (ServiceContainer, error) {
	if deps.Config == nil || deps.DB == nil || deps.Redis == nil {
		return ServiceContainer{}, fmt.Errorf("service dependencies incomplete")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	allowlistRepo := data.NewAllowlistRepo(deps.DB, deps.Config.Tenant.ID)
	stallRepo := data.NewStallRepo(deps.DB, deps.Config.Tenant.ID)

	allowlistSvc := service.NewAllowlistService(allowlistRepo, logger)
	stallSvc := service.NewStallService(stallRepo, logger)

	provider, err := BuildIdentityProvider(deps.Config.Auth, logger)
	if err != nil {
		return ServiceContainer{}, err
	}

	authMgr := service.NewAuthManager(service.AuthManagerOptions{
		Provider:    provider,
		Allowlist:   allowlistSvc,
		Tokens:      redisadapter.NewTokenStore(deps.Redis),
		Logger:      logger,
		CallTimeout: deps.Config.Auth.CallTimeout,
		TokenTTL:    deps.Config.Auth.TokenTTL,
	})

	return ServiceContainer{
		Auth:      authMgr,
		Allowlist: allowlistSvc,
		Stalls:    stallSvc,
	}, nil
}
