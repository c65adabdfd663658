package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"
	"time"

	domainauth "github.com/greenplate/admin-api/internal/domain/auth"
	"github.com/greenplate/admin-api/internal/domain/model"
)

// IdentityProvider verifies credentials and manages provider-side sessions.
//
// Implementations must translate provider-specific failures into the
// application error taxonomy (account_not_found, invalid_credential,
// rate_limited, service_unavailable, unknown); callers never inspect raw
// provider codes.
type IdentityProvider interface {
	// VerifyCredential checks an email/password pair and, on success,
	// returns the authenticated identity including an opaque session token.
	VerifyCredential(ctx context.Context, email, password string) (domainauth.Identity, error)

	// Resolve rehydrates a previously issued session token into an identity.
	Resolve(ctx context.Context, token string) (domainauth.Identity, error)

	// Invalidate force-terminates the provider-side session for token.
	Invalidate(ctx context.Context, token string) error
}

// ErrNoToken is returned by TokenStore.Load when no token is persisted.
var ErrNoToken = errors.New("no access token persisted")

// TokenStore persists the single opaque admin access token under a fixed
// key. It is written on successful authorization and removed on logout or
// denial.
type TokenStore interface {
	Save(ctx context.Context, token string, ttl time.Duration) error
	// Load returns the persisted token, or ErrNoToken when absent.
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// AllowlistSource yields a fresh allow-list snapshot. The session manager
// calls this inline per authorization decision; implementations must not
// serve a cached snapshot.
type AllowlistSource interface {
	Get(ctx context.Context) (*model.AllowList, error)
}
