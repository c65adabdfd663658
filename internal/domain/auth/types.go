package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// State is the lifecycle state of the admin session.
type State string

const (
	// StateInitializing is the state at process start, before the first
	// rehydration attempt has resolved.
	StateInitializing State = "initializing"
	// StateUnauthenticated means no admin is signed in.
	StateUnauthenticated State = "unauthenticated"
	// StateAuthenticating means a login attempt is in flight.
	StateAuthenticating State = "authenticating"
	// StateAuthenticated means a domain-authorized admin is signed in.
	StateAuthenticated State = "authenticated"
	// StateDenied is the terminal state of a rejected attempt; the session
	// transitions back to unauthenticated as soon as the forced provider
	// sign-out completes.
	StateDenied State = "denied"
)

// Identity represents the authenticated principal returned by the identity
// provider. Adapters map provider-specific payloads into this shape.
type Identity struct {
	UserID    string // stable user identifier from the provider
	Email     string // lowercase-normalized for comparisons
	Token     string // opaque session/access token issued by the provider
	ExpiresAt time.Time
}

// Session is the in-memory record of the current authentication attempt.
//
// Invariant: IsAuthorizedAdmin implies a non-empty Identity whose email
// domain was a member of the allow-list snapshot at the last check.
type Session struct {
	Identity          *Identity `json:"identity,omitempty"`
	Email             string    `json:"email,omitempty"`
	IsAuthorizedAdmin bool      `json:"is_authorized_admin"`
	State             State     `json:"state"`
}

// Authenticated reports whether the session holds a domain-authorized admin.
func (s Session) Authenticated() bool {
	return s.IsAuthorizedAdmin && s.Identity != nil
}

// Initial returns the session value at process start.
func Initial() Session {
	return Session{State: StateInitializing}
}

// Cleared returns the unauthenticated session value used after logout or a
// failed check.
func Cleared() Session {
	return Session{State: StateUnauthenticated}
}
