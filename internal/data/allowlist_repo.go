package data

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/greenplate/admin-api/internal/core"
	"github.com/greenplate/admin-api/internal/data/pgxutil"
	"github.com/greenplate/admin-api/internal/domain/model"
)

// AllowlistRepo provides database operations for the tenant's email-domain
// allow-list. The domain column is a text[] treated with set semantics, the
// server-side equivalent of the original document store's arrayUnion and
// arrayRemove mutations.
type AllowlistRepo struct {
	DB       *sql.DB
	TenantID string
}

var _ core.AllowlistRepository = (*AllowlistRepo)(nil)

// NewAllowlistRepo creates a new allow-list repository bound to the
// configured tenant.
func NewAllowlistRepo(db *sql.DB, tenantID string) *AllowlistRepo {
	return &AllowlistRepo{DB: db, TenantID: tenantID}
}

// Get returns the tenant display name and current domain set.
func (r *AllowlistRepo) Get(ctx context.Context) (*model.AllowList, error) {
	var out model.AllowList
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		row := conn.QueryRow(ctx,
			`SELECT name, domains FROM tenants WHERE id = $1`, r.TenantID)
		return row.Scan(&out.TenantName, &out.Domains)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return &out, nil
}

// AddDomain appends domain to the set if not already present. Adding an
// existing domain is a no-op at the store level; duplicate detection with a
// user-facing error happens at the service boundary.
func (r *AllowlistRepo) AddDomain(ctx context.Context, domain string) error {
	domain = model.NormalizeDomain(domain)
	return pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `
			UPDATE tenants
			SET domains = array_append(domains, $2), updated_at = now()
			WHERE id = $1 AND NOT (domains @> ARRAY[$2]::text[])`,
			r.TenantID, domain)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			// Either the tenant row is missing or the domain already exists.
			var exists bool
			row := conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tenants WHERE id = $1)`, r.TenantID)
			if scanErr := row.Scan(&exists); scanErr != nil {
				return scanErr
			}
			if !exists {
				return ErrTenantNotFound
			}
		}
		return nil
	})
}

// RemoveDomain removes domain from the set.
func (r *AllowlistRepo) RemoveDomain(ctx context.Context, domain string) error {
	domain = model.NormalizeDomain(domain)
	return pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `
			UPDATE tenants
			SET domains = array_remove(domains, $2), updated_at = now()
			WHERE id = $1 AND domains @> ARRAY[$2]::text[]`,
			r.TenantID, domain)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrDomainNotPresent
		}
		return nil
	})
}
