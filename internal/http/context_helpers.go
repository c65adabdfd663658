package httpx

import (
	"context"

	domainauth "github.com/greenplate/admin-api/internal/domain/auth"
)

// sessionContextKey is an unexported context key type for the admin session.
type sessionContextKey struct{}

// SetSessionInContext stores the admin session in the request context.
func SetSessionInContext(ctx context.Context, sess domainauth.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// SessionFromContext retrieves the admin session placed by the auth guard.
// The second return is false when no guard ran for this request.
func SessionFromContext(ctx context.Context) (domainauth.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(domainauth.Session)
	return sess, ok
}

// AdminEmailFromContext returns the signed-in admin's email, or "" when the
// request carries no authorized session.
func AdminEmailFromContext(ctx context.Context) string {
	sess, ok := SessionFromContext(ctx)
	if !ok || !sess.Authenticated() {
		return ""
	}
	return sess.Email
}
