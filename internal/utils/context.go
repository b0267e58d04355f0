// Package utils provides general-purpose helpers shared across the
// trip-keeper server: request identity in context, bearer token issuing
// and parsing, password hashing, JSON responses, object naming and the
// outbound HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/go-trip-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the authenticated caller of a
// request is stored.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the authenticated caller.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, &identity)
}

// ClearIdentity returns a copy of ctx in which no caller is authenticated,
// regardless of what an outer context carried.
func ClearIdentity(ctx context.Context) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, (*models.Identity)(nil))
}

// IdentityFromContext returns the authenticated caller, if any.
//
//	identity, ok := utils.IdentityFromContext(ctx)
//	if !ok {
//	    // anonymous request
//	}
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(*models.Identity)
	if !ok || identity == nil {
		return models.Identity{}, false
	}
	return *identity, true
}
