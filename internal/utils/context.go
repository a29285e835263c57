// Package utils provides general-purpose helper utilities used across the
// analytics service: context keys for the authenticated principal, keyed
// hashing, JSON response writing, JWT handling, identifiers and the shared
// HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/go-pixel-analytics/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key the auth middleware stores the authenticated
// [models.Principal] under.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// PrincipalFromContext retrieves the authenticated principal from ctx.
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return p, ok
}

// GetUserIDFromContext retrieves the authenticated user's ID from ctx.
//
// Returns ok == false when no principal is stored or its user ID is empty.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	p, ok := PrincipalFromContext(ctx)
	if !ok || p.UserID == "" {
		return "", false
	}
	return p.UserID, true
}
