package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenplate/admin-api/internal/domain/model"
	"github.com/greenplate/admin-api/internal/testutil"
)

const testAdmin = "admin@tint.edu.in"

func TestStallRepoCreate(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		tp := NewFixedTimeProvider(testutil.TestTime())
		repo := NewStallRepoWithTimeProvider(db, testutil.TestTenantID, tp)

		t.Run("creates an unverified stall", func(t *testing.T) {
			stall, err := repo.Create(ctx, testutil.NewStallRequest().Build(), testAdmin)
			require.NoError(t, err)

			assert.NotEmpty(t, stall.ID)
			assert.Equal(t, "Juice Junction", stall.Name)
			assert.Equal(t, "juice@tint.edu.in", stall.Email)
			assert.False(t, stall.IsVerified)
			assert.Equal(t, model.StallStatusActive, stall.Status)
			assert.Equal(t, testAdmin, stall.CreatedBy)
			assert.True(t, stall.CreatedAt.Equal(testutil.TestTime()))
			assert.True(t, stall.UpdatedAt.Equal(stall.CreatedAt))
		})

		t.Run("rejects an invalid request", func(t *testing.T) {
			_, err := repo.Create(ctx, testutil.NewStallRequest().WithName("  ").Build(), testAdmin)
			assert.Error(t, err)
		})

		t.Run("requires created_by", func(t *testing.T) {
			_, err := repo.Create(ctx, testutil.NewStallRequest().Build(), "  ")
			assert.Error(t, err)
		})
	})
}

func TestStallRepoGetByID(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewStallRepo(db, testutil.TestTenantID)

		created, err := repo.Create(ctx, testutil.NewStallRequest().Build(), testAdmin)
		require.NoError(t, err)

		t.Run("found", func(t *testing.T) {
			got, getErr := repo.GetByID(ctx, created.ID)
			require.NoError(t, getErr)
			assert.Equal(t, created.ID, got.ID)
			assert.Equal(t, created.Name, got.Name)
		})

		t.Run("not found", func(t *testing.T) {
			_, getErr := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
			assert.ErrorIs(t, getErr, ErrStallNotFound)
		})

		t.Run("scoped to the tenant", func(t *testing.T) {
			other := NewStallRepo(db, "other-tenant")
			_, getErr := other.GetByID(ctx, created.ID)
			assert.ErrorIs(t, getErr, ErrStallNotFound)
		})
	})
}

func TestStallRepoList(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		tp := NewFixedTimeProvider(testutil.TestTime())
		repo := NewStallRepoWithTimeProvider(db, testutil.TestTenantID, tp)

		t.Run("empty", func(t *testing.T) {
			stalls, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, stalls)
		})

		t.Run("newest first", func(t *testing.T) {
			_, err := repo.Create(ctx, testutil.NewStallRequest().WithName("Older").Build(), testAdmin)
			require.NoError(t, err)

			tp.AddTime(time.Minute)
			_, err = repo.Create(ctx,
				testutil.NewStallRequest().WithName("Newer").WithEmail("newer@tint.edu.in").Build(),
				testAdmin)
			require.NoError(t, err)

			stalls, err := repo.List(ctx)
			require.NoError(t, err)
			require.Len(t, stalls, 2)
			assert.Equal(t, "Newer", stalls[0].Name)
			assert.Equal(t, "Older", stalls[1].Name)
		})
	})
}

func TestStallRepoUpdate(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		tp := NewFixedTimeProvider(testutil.TestTime())
		repo := NewStallRepoWithTimeProvider(db, testutil.TestTenantID, tp)

		created, err := repo.Create(ctx, testutil.NewStallRequest().Build(), testAdmin)
		require.NoError(t, err)

		t.Run("partial update bumps updated_at", func(t *testing.T) {
			tp.AddTime(time.Hour)
			name := "Masala Corner"
			verified := true

			got, updateErr := repo.Update(ctx, created.ID, model.UpdateStallRequest{
				Name:       &name,
				IsVerified: &verified,
			})
			require.NoError(t, updateErr)

			assert.Equal(t, "Masala Corner", got.Name)
			assert.True(t, got.IsVerified)
			assert.Equal(t, created.Email, got.Email, "untouched fields survive")
			assert.True(t, got.UpdatedAt.After(got.CreatedAt))
		})

		t.Run("no fields", func(t *testing.T) {
			_, updateErr := repo.Update(ctx, created.ID, model.UpdateStallRequest{})
			assert.Error(t, updateErr)
		})

		t.Run("not found", func(t *testing.T) {
			status := model.StallStatusInactive
			_, updateErr := repo.Update(ctx,
				"00000000-0000-0000-0000-000000000000",
				model.UpdateStallRequest{Status: &status})
			assert.ErrorIs(t, updateErr, ErrStallNotFound)
		})
	})
}

func TestStallRepoDelete(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewStallRepo(db, testutil.TestTenantID)

		created, err := repo.Create(ctx, testutil.NewStallRequest().Build(), testAdmin)
		require.NoError(t, err)

		t.Run("deletes", func(t *testing.T) {
			require.NoError(t, repo.Delete(ctx, created.ID))
			_, getErr := repo.GetByID(ctx, created.ID)
			assert.ErrorIs(t, getErr, ErrStallNotFound)
		})

		t.Run("already gone", func(t *testing.T) {
			assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrStallNotFound)
		})
	})
}

func TestStallRepoStats(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewStallRepo(db, testutil.TestTenantID)

		t.Run("zero on an empty tenant", func(t *testing.T) {
			stats, err := repo.Stats(ctx)
			require.NoError(t, err)
			assert.Equal(t, &model.StallStats{}, stats)
		})

		t.Run("counts verified and active separately", func(t *testing.T) {
			first, err := repo.Create(ctx, testutil.NewStallRequest().Build(), testAdmin)
			require.NoError(t, err)
			_, err = repo.Create(ctx,
				testutil.NewStallRequest().
					WithName("Wrap Station").
					WithEmail("wraps@tint.edu.in").
					WithStatus(model.StallStatusInactive).
					Build(),
				testAdmin)
			require.NoError(t, err)

			verified := true
			_, err = repo.Update(ctx, first.ID, model.UpdateStallRequest{IsVerified: &verified})
			require.NoError(t, err)

			stats, err := repo.Stats(ctx)
			require.NoError(t, err)
			assert.Equal(t, &model.StallStats{Total: 2, Verified: 1, Active: 1}, stats)
		})
	})
}
