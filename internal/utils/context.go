package utils

import (
	"context"
	"errors"
)

// ErrNoIdentity reports that a session token resolved to no live identity:
// the session is missing, expired, or its user is gone. Resolution failures
// that are NOT wrapped in it (a database outage, say) are real errors, not
// anonymity.
var ErrNoIdentity = errors.New("no identity for session")

// Role is the closed set of account roles. Comparing against these constants
// keeps guard logic exhaustive instead of scattering raw strings.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Identity is the request-scoped view of the authenticated user, resolved
// once per request by the identity middleware. The stored credential never
// appears here.
type Identity struct {
	UserID   string
	Username string
	Role     Role
}

type contextKey string

const ContextIdentityKey contextKey = "identity"

// GetIdentityFromContext returns the identity attached by the middleware.
// ok is false for anonymous requests.
func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(ContextIdentityKey).(Identity)
	return ident, ok
}
