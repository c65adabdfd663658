package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"sync"
	"time"

	domainauth "github.com/greenplate/admin-api/internal/domain/auth"
	"github.com/greenplate/admin-api/internal/domain/model"
	apperrors "github.com/greenplate/admin-api/internal/errors"
	"github.com/greenplate/admin-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityProvider = (*MockIdentityProvider)(nil)
	_ ports.TokenStore       = (*MemoryTokenStore)(nil)
	_ ports.AllowlistSource  = (*StaticAllowlistSource)(nil)
)

// MockIdentityProvider simulates an identity provider for tests. Accounts
// maps email to password; verified credentials mint deterministic tokens.
// Function overrides take precedence when set.
type MockIdentityProvider struct {
	VerifyFunc     func(ctx context.Context, email, password string) (domainauth.Identity, error)
	ResolveFunc    func(ctx context.Context, token string) (domainauth.Identity, error)
	InvalidateFunc func(ctx context.Context, token string) error

	Accounts map[string]string

	mu              sync.Mutex
	sessions        map[string]domainauth.Identity
	verifyCalls     int
	invalidateCalls []string
}

// NewMockIdentityProvider builds a provider with the given email/password accounts.
func NewMockIdentityProvider(accounts map[string]string) *MockIdentityProvider {
	return &MockIdentityProvider{
		Accounts: accounts,
		sessions: make(map[string]domainauth.Identity),
	}
}

// VerifyCredential implements ports.IdentityProvider.
func (m *MockIdentityProvider) VerifyCredential(ctx context.Context, email, password string) (domainauth.Identity, error) {
	m.mu.Lock()
	m.verifyCalls++
	m.mu.Unlock()

	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, password)
	}

	stored, ok := m.Accounts[email]
	if !ok {
		return domainauth.Identity{}, apperrors.AccountNotFound("no account for email")
	}
	if stored != password {
		return domainauth.Identity{}, apperrors.InvalidCredential("password mismatch")
	}

	identity := domainauth.Identity{
		UserID:    "user-" + email,
		Email:     email,
		Token:     "token-" + email,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	m.mu.Lock()
	m.sessions[identity.Token] = identity
	m.mu.Unlock()
	return identity, nil
}

// Resolve implements ports.IdentityProvider.
func (m *MockIdentityProvider) Resolve(ctx context.Context, token string) (domainauth.Identity, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, token)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	identity, ok := m.sessions[token]
	if !ok {
		return domainauth.Identity{}, apperrors.Unauthenticated("unknown token")
	}
	return identity, nil
}

// Invalidate implements ports.IdentityProvider.
func (m *MockIdentityProvider) Invalidate(ctx context.Context, token string) error {
	m.mu.Lock()
	m.invalidateCalls = append(m.invalidateCalls, token)
	delete(m.sessions, token)
	m.mu.Unlock()

	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, token)
	}
	return nil
}

// VerifyCalls returns how many times VerifyCredential was invoked.
func (m *MockIdentityProvider) VerifyCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.verifyCalls
}

// InvalidatedTokens returns the tokens passed to Invalidate, in order.
func (m *MockIdentityProvider) InvalidatedTokens() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.invalidateCalls))
	copy(out, m.invalidateCalls)
	return out
}

// HasSession reports whether a provider-side session still exists for token.
func (m *MockIdentityProvider) HasSession(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[token]
	return ok
}

// MemoryTokenStore is an in-memory ports.TokenStore.
// Error fields, when set, are returned by the corresponding operation.
type MemoryTokenStore struct {
	SaveErr  error
	LoadErr  error
	ClearErr error

	mu    sync.Mutex
	token string
	has   bool
}

// Save implements ports.TokenStore.
func (s *MemoryTokenStore) Save(_ context.Context, token string, _ time.Duration) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.has = true
	return nil
}

// Load implements ports.TokenStore.
func (s *MemoryTokenStore) Load(context.Context) (string, error) {
	if s.LoadErr != nil {
		return "", s.LoadErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.has {
		return "", ports.ErrNoToken
	}
	return s.token, nil
}

// Clear implements ports.TokenStore.
func (s *MemoryTokenStore) Clear(context.Context) error {
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.has = false
	return nil
}

// Stored returns the persisted token and whether one exists.
func (s *MemoryTokenStore) Stored() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.has
}

// Seed installs a token as if a previous process had persisted it.
func (s *MemoryTokenStore) Seed(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.has = true
}

// StaticAllowlistSource serves a fixed allow-list snapshot, or Err when set.
// GetFunc overrides both when provided.
type StaticAllowlistSource struct {
	GetFunc func(ctx context.Context) (*model.AllowList, error)
	Domains []string
	Err     error

	mu       sync.Mutex
	getCalls int
}

// Get implements ports.AllowlistSource.
func (s *StaticAllowlistSource) Get(ctx context.Context) (*model.AllowList, error) {
	s.mu.Lock()
	s.getCalls++
	s.mu.Unlock()

	if s.GetFunc != nil {
		return s.GetFunc(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.AllowList{TenantName: "Test College", Domains: s.Domains}, nil
}

// GetCalls returns how many snapshots were fetched.
func (s *StaticAllowlistSource) GetCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getCalls
}
