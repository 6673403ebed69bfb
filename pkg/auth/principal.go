package auth

import "context"

type contextKey string

const principalKey contextKey = "principal"

// Principal is the result of an explicit session lookup.
// The zero value is the anonymous principal.
type Principal struct {
	SessionID     string
	Authenticated bool
}

// Anonymous is the principal of a request without a valid admin session.
var Anonymous = Principal{}

// Authenticated returns the principal for a verified admin session.
func Authenticated(sessionID string) Principal {
	return Principal{SessionID: sessionID, Authenticated: true}
}

// WithPrincipal stores the principal in the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the principal stored by RequireAdmin.
// Returns Anonymous when not set.
func PrincipalFromContext(ctx context.Context) Principal {
	p, _ := ctx.Value(principalKey).(Principal)
	return p
}
