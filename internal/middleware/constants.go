// File: internal/middleware/constants.go
package middleware

import "context"

// Context keys for middleware communication
type contextKey string

const UserIDKey contextKey = "user_id"

// UserIDFrom returns the authenticated user ID set by the JWT middleware.
func UserIDFrom(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	return id, ok
}
