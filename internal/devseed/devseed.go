// Package devseed seeds a development database with a tenant, an email
// allow-list, and a few sample stalls. It is only invoked in dev mode and
// is idempotent: existing rows are left alone.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/greenplate/admin-api/internal/data"
	"github.com/greenplate/admin-api/internal/domain/model"
)

// Config controls what gets seeded.
type Config struct {
	TenantID   string
	TenantName string
	Domains    []string
	AdminEmail string
}

// Run applies the development seed.
func Run(ctx context.Context, db *sql.DB, cfg Config, logger *slog.Logger) error {
	if cfg.TenantID == "" {
		return errors.New("devseed: TenantID is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TenantName == "" {
		cfg.TenantName = "Dev College"
	}
	if len(cfg.Domains) == 0 {
		cfg.Domains = []string{"tint.edu.in"}
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "dev@" + cfg.Domains[0]
	}

	if err := seedTenant(ctx, db, cfg); err != nil {
		return err
	}
	if err := seedStalls(ctx, db, cfg, logger); err != nil {
		return err
	}

	logger.InfoContext(ctx, "development seed applied",
		"tenant", cfg.TenantID, "domains", cfg.Domains)
	return nil
}

func seedTenant(ctx context.Context, db *sql.DB, cfg Config) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO tenants (id, name, domains)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING`,
		cfg.TenantID, cfg.TenantName, cfg.Domains)
	if err != nil {
		return fmt.Errorf("devseed: insert tenant: %w", err)
	}
	return nil
}

func seedStalls(ctx context.Context, db *sql.DB, cfg Config, logger *slog.Logger) error {
	repo := data.NewStallRepo(db, cfg.TenantID)

	existing, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("devseed: list stalls: %w", err)
	}
	if len(existing) > 0 {
		logger.InfoContext(ctx, "skipping stall seed", "reason", "stalls already present")
		return nil
	}

	samples := []model.CreateStallRequest{
		{Name: "Juice Junction", Email: "juice@" + cfg.Domains[0], Status: model.StallStatusActive},
		{Name: "Masala Corner", Email: "masala@" + cfg.Domains[0], Status: model.StallStatusActive},
		{Name: "Wrap Station", Email: "wraps@" + cfg.Domains[0], Status: model.StallStatusInactive},
	}
	for i := range samples {
		if _, createErr := repo.Create(ctx, &samples[i], cfg.AdminEmail); createErr != nil {
			return fmt.Errorf("devseed: create stall %q: %w", samples[i].Name, createErr)
		}
	}
	return nil
}
