package devauth

// Package devauth provides a simple, config-driven IdentityProvider for
// local development. It verifies a single configured account and mints
// in-memory session tokens.

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/greenplate/admin-api/internal/domain/auth"
	apperrors "github.com/greenplate/admin-api/internal/errors"
	"github.com/greenplate/admin-api/internal/ports"
)

// Config controls the dev auth provider behavior.
type Config struct {
	Email           string
	Password        string
	SessionDuration time.Duration // default 8h when zero
}

// Provider implements ports.IdentityProvider for local development.
type Provider struct {
	email           string
	password        string
	sessionDuration time.Duration

	mu       sync.Mutex
	sessions map[string]domainauth.Identity
}

var _ ports.IdentityProvider = (*Provider)(nil)

// NewProvider constructs a dev auth provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.Email == "" {
		return nil, errors.New("dev auth: Email is required")
	}
	if cfg.Password == "" {
		return nil, errors.New("dev auth: Password is required")
	}
	dur := cfg.SessionDuration
	if dur == 0 {
		dur = 8 * time.Hour
	}
	return &Provider{
		email:           domainauth.NormalizeEmail(cfg.Email),
		password:        cfg.Password,
		sessionDuration: dur,
		sessions:        make(map[string]domainauth.Identity),
	}, nil
}

// VerifyCredential checks the configured account and mints a session token.
func (p *Provider) VerifyCredential(_ context.Context, email, password string) (domainauth.Identity, error) {
	if domainauth.NormalizeEmail(email) != p.email {
		return domainauth.Identity{}, apperrors.AccountNotFound("account not found")
	}
	if password != p.password {
		return domainauth.Identity{}, apperrors.InvalidCredential("credential verification failed")
	}

	identity := domainauth.Identity{
		UserID:    "dev-" + p.email,
		Email:     p.email,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(p.sessionDuration),
	}

	p.mu.Lock()
	p.sessions[identity.Token] = identity
	p.mu.Unlock()

	return identity, nil
}

// Resolve looks up a previously minted session token.
func (p *Provider) Resolve(_ context.Context, token string) (domainauth.Identity, error) {
	p.mu.Lock()
	identity, ok := p.sessions[token]
	p.mu.Unlock()

	if !ok {
		return domainauth.Identity{}, apperrors.InvalidCredential("unknown session token")
	}
	if time.Now().After(identity.ExpiresAt) {
		p.Invalidate(context.Background(), token) //nolint:errcheck // in-memory delete cannot fail
		return domainauth.Identity{}, apperrors.InvalidCredential("session expired")
	}
	return identity, nil
}

// Invalidate removes a minted session token.
func (p *Provider) Invalidate(_ context.Context, token string) error {
	p.mu.Lock()
	delete(p.sessions, token)
	p.mu.Unlock()
	return nil
}
