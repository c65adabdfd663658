package core

// Package core declares the repository interfaces the service layer depends
// on. Implementations live in internal/data; mocks in internal/mocks.

import (
	"context"

	"github.com/greenplate/admin-api/internal/domain/model"
)

// AllowlistRepository provides access to the tenant's email-domain allow-list.
// Mutations carry set semantics: adding an existing domain or removing an
// absent one must leave the stored set unchanged.
type AllowlistRepository interface {
	// Get returns the tenant display name and current domain set.
	Get(ctx context.Context) (*model.AllowList, error)

	// AddDomain appends domain to the set if not already present.
	AddDomain(ctx context.Context, domain string) error

	// RemoveDomain removes domain from the set.
	RemoveDomain(ctx context.Context, domain string) error
}

// StallRepository provides persistence for stalls.
type StallRepository interface {
	Create(ctx context.Context, req *model.CreateStallRequest, createdBy string) (*model.Stall, error)
	GetByID(ctx context.Context, id string) (*model.Stall, error)
	List(ctx context.Context) ([]*model.Stall, error)
	Update(ctx context.Context, id string, req model.UpdateStallRequest) (*model.Stall, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*model.StallStats, error)
}
