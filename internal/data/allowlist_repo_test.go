package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenplate/admin-api/internal/testutil"
)

func TestAllowlistRepoGet(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewAllowlistRepo(db, testutil.TestTenantID)

		t.Run("returns the seeded tenant", func(t *testing.T) {
			list, err := repo.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, "Test College", list.TenantName)
			assert.Equal(t, []string{"tint.edu.in"}, list.Domains)
		})

		t.Run("missing tenant", func(t *testing.T) {
			missing := NewAllowlistRepo(db, "no-such-tenant")
			_, err := missing.Get(ctx)
			assert.ErrorIs(t, err, ErrTenantNotFound)
		})
	})
}

func TestAllowlistRepoAddDomain(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewAllowlistRepo(db, testutil.TestTenantID)

		t.Run("appends a new domain", func(t *testing.T) {
			require.NoError(t, repo.AddDomain(ctx, "Partner.AC.IN"))

			list, err := repo.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"tint.edu.in", "partner.ac.in"}, list.Domains)
		})

		t.Run("adding an existing domain is a no-op", func(t *testing.T) {
			require.NoError(t, repo.AddDomain(ctx, "tint.edu.in"))

			list, err := repo.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"tint.edu.in", "partner.ac.in"}, list.Domains)
		})

		t.Run("missing tenant", func(t *testing.T) {
			missing := NewAllowlistRepo(db, "no-such-tenant")
			assert.ErrorIs(t, missing.AddDomain(ctx, "tint.edu.in"), ErrTenantNotFound)
		})
	})
}

func TestAllowlistRepoRemoveDomain(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewAllowlistRepo(db, testutil.TestTenantID)
		testutil.SeedTestTenant(t, db, []string{"tint.edu.in", "partner.ac.in"})

		t.Run("removes a present domain", func(t *testing.T) {
			require.NoError(t, repo.RemoveDomain(ctx, "PARTNER.ac.in"))

			list, err := repo.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"tint.edu.in"}, list.Domains)
		})

		t.Run("absent domain", func(t *testing.T) {
			err := repo.RemoveDomain(ctx, "partner.ac.in")
			assert.ErrorIs(t, err, ErrDomainNotPresent)
		})
	})
}
