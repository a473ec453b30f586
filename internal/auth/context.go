package auth

import "context"

// contextKey keeps the user ID entry private to this package so no other
// context value can collide with it.
type contextKey struct{}

var userIDKey contextKey

// WithUserID stores the authenticated user's ID in the context.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user's ID, if one was stored.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
