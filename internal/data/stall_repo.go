package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/greenplate/admin-api/internal/core"
	"github.com/greenplate/admin-api/internal/data/pgxutil"
	"github.com/greenplate/admin-api/internal/domain/model"
)

// StallRepo provides database operations for stalls.
type StallRepo struct {
	DB           *sql.DB
	TenantID     string
	timeProvider TimeProvider
}

var _ core.StallRepository = (*StallRepo)(nil)

const stallColumns = `id, name, email, is_verified, status, created_by, created_at, updated_at`

// NewStallRepo creates a new StallRepo with a real time provider.
func NewStallRepo(db *sql.DB, tenantID string) *StallRepo {
	return &StallRepo{DB: db, TenantID: tenantID, timeProvider: &RealTimeProvider{}}
}

// NewStallRepoWithTimeProvider creates a new StallRepo with a custom time provider (useful for tests).
func NewStallRepoWithTimeProvider(db *sql.DB, tenantID string, tp TimeProvider) *StallRepo {
	return &StallRepo{DB: db, TenantID: tenantID, timeProvider: tp}
}

// Create inserts a new stall. isVerified always starts false and createdBy is
// the authenticated admin's email; neither is client input.
func (r *StallRepo) Create(
	ctx context.Context,
	req *model.CreateStallRequest,
	createdBy string,
) (*model.Stall, error) {
	if req == nil {
		return nil, errors.New("create stall request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(createdBy) == "" {
		return nil, errors.New("created_by is required")
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Stall
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO stalls (tenant_id, name, email, is_verified, status, created_by, created_at, updated_at)
			VALUES ($1, $2, $3, false, $4, $5, $6, $6)
			RETURNING `+stallColumns,
			r.TenantID,
			strings.TrimSpace(req.Name),
			strings.TrimSpace(req.Email),
			req.Status,
			createdBy,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Stall])
		return err
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByID retrieves a stall by ID.
func (r *StallRepo) GetByID(ctx context.Context, id string) (*model.Stall, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("id is required")
	}

	var out model.Stall
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+stallColumns+` FROM stalls WHERE id = $1 AND tenant_id = $2`,
			id, r.TenantID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Stall])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStallNotFound
		}
		return nil, err
	}
	return &out, nil
}

// List returns all stalls for the tenant, newest first.
func (r *StallRepo) List(ctx context.Context) ([]*model.Stall, error) {
	var stalls []*model.Stall
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+stallColumns+` FROM stalls WHERE tenant_id = $1 ORDER BY created_at DESC`,
			r.TenantID)
		if err != nil {
			return err
		}
		defer rows.Close()

		results, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Stall])
		if err != nil {
			return err
		}
		stalls = make([]*model.Stall, len(results))
		for i := range results {
			stalls[i] = &results[i]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stalls, nil
}

// Update updates an existing stall and bumps updated_at.
func (r *StallRepo) Update(
	ctx context.Context,
	id string,
	req model.UpdateStallRequest,
) (*model.Stall, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("id is required")
	}

	setParts := []string{"updated_at = $1"}
	args := []any{r.timeProvider.Now().UTC()}
	argIndex := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIndex))
		args = append(args, strings.TrimSpace(*req.Name))
		argIndex++
	}
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", argIndex))
		args = append(args, strings.TrimSpace(*req.Email))
		argIndex++
	}
	if req.IsVerified != nil {
		setParts = append(setParts, fmt.Sprintf("is_verified = $%d", argIndex))
		args = append(args, *req.IsVerified)
		argIndex++
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *req.Status)
		argIndex++
	}

	args = append(args, id, r.TenantID)

	var out model.Stall
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		query := fmt.Sprintf(`
			UPDATE stalls
			SET %s
			WHERE id = $%d AND tenant_id = $%d
			RETURNING `+stallColumns,
			strings.Join(setParts, ", "), argIndex, argIndex+1)

		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Stall])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStallNotFound
		}
		return nil, err
	}
	return &out, nil
}

// Delete deletes a stall by ID.
func (r *StallRepo) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("id is required")
	}

	return pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx,
			`DELETE FROM stalls WHERE id = $1 AND tenant_id = $2`, id, r.TenantID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrStallNotFound
		}
		return nil
	})
}

// Stats returns stall counts for the dashboard.
func (r *StallRepo) Stats(ctx context.Context) (*model.StallStats, error) {
	var stats model.StallStats
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		row := conn.QueryRow(ctx, `
			SELECT
				COUNT(*) AS total,
				COUNT(CASE WHEN is_verified THEN 1 END) AS verified,
				COUNT(CASE WHEN status = 'active' THEN 1 END) AS active
			FROM stalls
			WHERE tenant_id = $1`, r.TenantID)
		return row.Scan(&stats.Total, &stats.Verified, &stats.Active)
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
