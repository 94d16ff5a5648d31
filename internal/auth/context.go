// internal/auth/context.go
//
// Request-context helpers for the authenticated user.
//
// Usage
// -----
//     // Attach user 123 to the request context (RequireAuth middleware).
//     ctx = auth.WithUser(ctx, 123)
//
//     // Downstream handlers retrieve the ID.
//     id, ok := auth.UserID(ctx)   // 123, true
//
// Notes
// -----
// • Stores a uint64 directly in context.  Handlers that need the full user
//   record fetch it from the user repository by this ID.

package auth

import "context"

// userKey is unexported to avoid context-key collisions.
type userKey struct{}

// WithUser returns a new context carrying the given userID.
func WithUser(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, userKey{}, userID)
}

// UserID extracts the userID from ctx.  It returns (0, false) if no user is
// set or if the stored value is not a uint64.
func UserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(userKey{})
	id, ok := v.(uint64)
	return id, ok
}
