// Package utils provides small helpers shared across layers: type-safe
// context keys and HTTP response writing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. A dedicated type prevents
// collisions with string-based keys set by other packages.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the session middleware stores the
// authenticated user's id. Absent for anonymous requests.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user id from the context.
// ok is false when the request is anonymous.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

// OwnerFromContext is GetUserIDFromContext shaped for the store layer:
// a *string owner filter, nil for anonymous callers.
func OwnerFromContext(ctx context.Context) *string {
	if userID, ok := GetUserIDFromContext(ctx); ok && userID != "" {
		return &userID
	}
	return nil
}
