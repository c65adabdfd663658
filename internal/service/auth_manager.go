package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainauth "github.com/greenplate/admin-api/internal/domain/auth"
	apperrors "github.com/greenplate/admin-api/internal/errors"
	"github.com/greenplate/admin-api/internal/ports"
)

// AuthManagerOptions groups dependencies for AuthManager.
type AuthManagerOptions struct {
	Provider  ports.IdentityProvider // Required: identity provider
	Allowlist ports.AllowlistSource  // Required: fresh allow-list snapshots
	Tokens    ports.TokenStore       // Required: persisted access token
	Logger    *slog.Logger           // Optional: structured logger

	// CallTimeout bounds each provider/store call made during an
	// authorization decision. Zero disables the bound.
	CallTimeout time.Duration

	// TokenTTL is the fallback token lifetime when the provider supplies no
	// expiry. Defaults to 12h when zero.
	TokenTTL time.Duration
}

// AuthManager owns the process-wide admin session: the single authoritative
// answer to "is there a signed-in, domain-authorized administrator".
//
// All session mutations go through apply, guarded by one mutex and ordered
// by an event sequence assigned when each event arrives. A slow, stale
// event (for example a session-change notification that spent a long time
// in its allow-list fetch) can therefore never overwrite state produced by
// a newer event: last-writer-wins by event order, not completion order.
//
// Every authorization decision fetches a fresh allow-list snapshot inline;
// the manager holds no allow-list cache. Any provider or store failure
// resolves to unauthenticated (fail closed).
type AuthManager struct {
	provider    ports.IdentityProvider
	allowlist   ports.AllowlistSource
	tokens      ports.TokenStore
	logger      *slog.Logger
	callTimeout time.Duration
	tokenTTL    time.Duration

	mu         sync.Mutex
	sess       domainauth.Session
	nextSeq    uint64
	appliedSeq uint64
	closed     bool

	subs    map[uint64]chan domainauth.Session
	nextSub uint64
}

// SessionEvent is an asynchronous session-change notification. An empty
// Token means the provider-side session disappeared.
type SessionEvent struct {
	Token string
}

// NewAuthManager constructs a new AuthManager. The session starts in the
// initializing state; call Start to rehydrate a stored token.
func NewAuthManager(opts AuthManagerOptions) *AuthManager {
	if opts.Provider == nil || opts.Allowlist == nil || opts.Tokens == nil {
		//nolint:forbidigo // Service construction must fail fast during wiring when dependencies are missing
		panic("AuthManager requires Provider, Allowlist, and Tokens")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tokenTTL := opts.TokenTTL
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}

	return &AuthManager{
		provider:    opts.Provider,
		allowlist:   opts.Allowlist,
		tokens:      opts.Tokens,
		logger:      logger,
		callTimeout: opts.CallTimeout,
		tokenTTL:    tokenTTL,
		sess:        domainauth.Initial(),
		subs:        make(map[uint64]chan domainauth.Session),
	}
}

// Start rehydrates a previously persisted access token, re-running the
// domain check against the current allow-list. It resolves the initializing
// state on every path and never fails the process: a dead token or an
// unreachable provider simply leaves the session unauthenticated.
func (m *AuthManager) Start(ctx context.Context) {
	seq := m.takeSeq()

	token, err := m.tokens.Load(ctx)
	if err != nil {
		if !errors.Is(err, ports.ErrNoToken) {
			m.logger.WarnContext(ctx, "token store read failed during rehydration", "error", err)
		}
		m.apply(seq, domainauth.Cleared())
		return
	}

	sess, err := m.checkSessionToken(ctx, token)
	if err != nil {
		m.logger.InfoContext(ctx, "stored session rejected during rehydration",
			"reason", string(apperrors.CodeOf(err)))
		m.clearToken(ctx)
		m.apply(seq, domainauth.Cleared())
		return
	}
	m.apply(seq, sess)
}

// Login verifies credentials, re-checks the email domain against a freshly
// fetched allow-list, and on success persists the provider's access token.
//
// The returned session is the manager's state after the attempt. The
// session never observably reports an authorized admin before the domain
// check has passed, and the authenticating (loading) state is resolved on
// every exit path.
func (m *AuthManager) Login(ctx context.Context, email, password string) (domainauth.Session, error) {
	email = domainauth.NormalizeEmail(email)
	if !domainauth.ValidEmail(email) {
		return m.Snapshot(), apperrors.ValidationField("email", "Please enter a valid email address")
	}
	if password == "" {
		return m.Snapshot(), apperrors.ValidationField("password", "Please fill in all fields")
	}

	seq := m.takeSeq()
	m.apply(seq, domainauth.Session{State: domainauth.StateAuthenticating})

	sess, err := m.verifyAndAuthorize(ctx, seq, email, password)
	if err != nil {
		m.apply(seq, domainauth.Cleared())
		return m.Snapshot(), err
	}

	m.apply(seq, sess)
	return m.Snapshot(), nil
}

// verifyAndAuthorize runs steps 2-5 of the login flow: credential
// verification, fresh allow-list fetch, exact domain check, token persist.
func (m *AuthManager) verifyAndAuthorize(
	ctx context.Context,
	seq uint64,
	email, password string,
) (domainauth.Session, error) {
	callCtx, cancel := m.callContext(ctx)
	defer cancel()

	identity, err := m.provider.VerifyCredential(callCtx, email, password)
	if err != nil {
		return domainauth.Session{}, normalizeProviderErr(err)
	}

	// The snapshot must postdate credential verification; an earlier fetch
	// could admit a domain an administrator just removed.
	snapshot, err := m.allowlist.Get(callCtx)
	if err != nil {
		m.invalidateQuietly(ctx, identity.Token)
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeServiceUnavailable,
			"allow-list unavailable")
	}

	if !domainauth.EmailDomainAllowed(identity.Email, snapshot.Domains) {
		m.apply(seq, domainauth.Session{State: domainauth.StateDenied})
		m.invalidateQuietly(ctx, identity.Token)
		m.clearToken(ctx)
		return domainauth.Session{}, apperrors.DomainNotAllowed("email domain is not on the allow-list")
	}

	if err := m.tokens.Save(callCtx, identity.Token, m.tokenTTLFor(identity)); err != nil {
		m.logger.ErrorContext(ctx, "persist access token failed", "error", err)
		m.invalidateQuietly(ctx, identity.Token)
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeServiceUnavailable,
			"token store unavailable")
	}

	return domainauth.Session{
		Identity:          &identity,
		Email:             identity.Email,
		IsAuthorizedAdmin: true,
		State:             domainauth.StateAuthenticated,
	}, nil
}

// Logout invalidates the provider session, clears the persisted token, and
// resets the session. It never fails observably: remote errors are logged
// and swallowed, and local state is always cleared.
func (m *AuthManager) Logout(ctx context.Context) {
	seq := m.takeSeq()

	if identity := m.Snapshot().Identity; identity != nil {
		m.invalidateQuietly(ctx, identity.Token)
	}
	m.clearToken(ctx)
	m.apply(seq, domainauth.Cleared())
}

// HandleSessionChange processes an asynchronous provider notification. A
// session that appeared (or was rehydrated elsewhere) is re-checked against
// the CURRENT allow-list, so administrators revoking a domain take effect on
// the next notification; a disappeared session clears local state.
func (m *AuthManager) HandleSessionChange(ctx context.Context, ev SessionEvent) {
	seq := m.takeSeq()

	if ev.Token == "" {
		m.clearToken(ctx)
		m.apply(seq, domainauth.Cleared())
		return
	}

	sess, err := m.checkSessionToken(ctx, ev.Token)
	if err != nil {
		m.logger.InfoContext(ctx, "session-change check failed, signing out",
			"reason", string(apperrors.CodeOf(err)))
		m.clearToken(ctx)
		m.apply(seq, domainauth.Cleared())
		return
	}
	m.apply(seq, sess)
}

// Revalidate re-checks the persisted session once: the stored token is
// resolved with the provider and the domain check re-runs against the
// current allow-list. Neither Kratos nor the dev provider pushes session
// notifications, so this is how HandleSessionChange gets fed after startup;
// a domain revoked mid-session signs the admin out on the next pass instead
// of the next process restart.
func (m *AuthManager) Revalidate(ctx context.Context) {
	loadCtx, cancel := m.callContext(ctx)
	defer cancel()

	token, err := m.tokens.Load(loadCtx)
	if err != nil {
		if errors.Is(err, ports.ErrNoToken) && !m.Snapshot().Authenticated() {
			// Idle with nothing stored; no state to reconcile.
			return
		}
		if !errors.Is(err, ports.ErrNoToken) {
			m.logger.WarnContext(ctx, "token store read failed during revalidation", "error", err)
		}
		m.HandleSessionChange(ctx, SessionEvent{})
		return
	}
	m.HandleSessionChange(ctx, SessionEvent{Token: token})
}

// RunRevalidation calls Revalidate every interval until ctx is cancelled.
// Wired once at process start, alongside the HTTP server.
func (m *AuthManager) RunRevalidation(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Revalidate(ctx)
		}
	}
}

// checkSessionToken resolves a provider token and re-runs the domain check
// against a fresh allow-list snapshot. On a disallowed domain the provider
// session is force-invalidated before the error is returned.
func (m *AuthManager) checkSessionToken(ctx context.Context, token string) (domainauth.Session, error) {
	callCtx, cancel := m.callContext(ctx)
	defer cancel()

	identity, err := m.provider.Resolve(callCtx, token)
	if err != nil {
		return domainauth.Session{}, normalizeProviderErr(err)
	}

	snapshot, err := m.allowlist.Get(callCtx)
	if err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeServiceUnavailable,
			"allow-list unavailable")
	}

	if !domainauth.EmailDomainAllowed(identity.Email, snapshot.Domains) {
		m.invalidateQuietly(ctx, identity.Token)
		return domainauth.Session{}, apperrors.DomainNotAllowed("email domain is not on the allow-list")
	}

	return domainauth.Session{
		Identity:          &identity,
		Email:             identity.Email,
		IsAuthorizedAdmin: true,
		State:             domainauth.StateAuthenticated,
	}, nil
}

// Snapshot returns a copy of the current session.
func (m *AuthManager) Snapshot() domainauth.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copySession(m.sess)
}

// State returns the current lifecycle state.
func (m *AuthManager) State() domainauth.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess.State
}

// Ready reports whether the initial rehydration has resolved.
func (m *AuthManager) Ready() bool {
	return m.State() != domainauth.StateInitializing
}

// Subscribe registers for session snapshots on every applied change. The
// returned disposer unregisters and closes the channel; snapshots are
// dropped rather than blocking a slow consumer.
func (m *AuthManager) Subscribe() (<-chan domainauth.Session, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan domainauth.Session, 8)
	m.subs[id] = ch

	return ch, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if sub, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(sub)
		}
	}
}

// Close tears down all subscriptions.
func (m *AuthManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	for id, ch := range m.subs {
		delete(m.subs, id)
		close(ch)
	}
}

// takeSeq assigns the event-order sequence for a new event.
func (m *AuthManager) takeSeq() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextSeq++
	return m.nextSeq
}

// apply installs sess as the current session unless a newer event has
// already applied. Returns whether the state was installed.
func (m *AuthManager) apply(seq uint64, sess domainauth.Session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if seq < m.appliedSeq || m.closed {
		return false
	}
	m.appliedSeq = seq
	m.sess = sess

	for _, ch := range m.subs {
		select {
		case ch <- copySession(sess):
		default:
		}
	}
	return true
}

// invalidateQuietly force-terminates a provider session, logging failures.
// Used on denial and logout paths where the local outcome is already fixed.
func (m *AuthManager) invalidateQuietly(ctx context.Context, token string) {
	if token == "" {
		return
	}
	callCtx, cancel := m.callContext(ctx)
	defer cancel()
	if err := m.provider.Invalidate(callCtx, token); err != nil {
		m.logger.WarnContext(ctx, "provider session invalidation failed", "error", err)
	}
}

// clearToken removes the persisted access token, logging failures.
func (m *AuthManager) clearToken(ctx context.Context) {
	callCtx, cancel := m.callContext(ctx)
	defer cancel()
	if err := m.tokens.Clear(callCtx); err != nil {
		m.logger.WarnContext(ctx, "clear persisted token failed", "error", err)
	}
}

func (m *AuthManager) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.callTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, m.callTimeout)
}

func (m *AuthManager) tokenTTLFor(identity domainauth.Identity) time.Duration {
	if !identity.ExpiresAt.IsZero() {
		if ttl := time.Until(identity.ExpiresAt); ttl > 0 {
			return ttl
		}
	}
	return m.tokenTTL
}

// normalizeProviderErr guarantees callers above the manager only ever see
// taxonomy errors, even when a provider implementation leaks a raw error.
func normalizeProviderErr(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.Wrap(err, apperrors.ErrCodeServiceUnavailable, "identity provider timed out")
	}
	return apperrors.Wrap(err, apperrors.ErrCodeUnknown, "identity provider failed")
}

func copySession(sess domainauth.Session) domainauth.Session {
	out := sess
	if sess.Identity != nil {
		identity := *sess.Identity
		out.Identity = &identity
	}
	return out
}
