package domain

import "context"

type identityKey struct{}

// Identity is the authenticated caller of a single request
type Identity struct {
	UserID int64 `json:"user_id"`
}

// WithIdentity stores the identity inside the request context for downstream consumers
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext retrieves the identity stored by WithIdentity
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}
