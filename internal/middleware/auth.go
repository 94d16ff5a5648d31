// internal/middleware/auth.go
//
// Session-gate middleware.
//
// Every route except registration, login, and the health/metrics endpoints
// sits behind RequireAuth.  A missing or invalid session cookie yields 401
// before the request body is touched; a valid one attaches the user ID to
// the request context for downstream handlers.

package middleware

import (
	"net/http"

	"github.com/yanizio/atelier/internal/auth"
	"github.com/yanizio/atelier/internal/session"
)

// RequireAuth rejects unauthenticated requests with a JSON 401.
func RequireAuth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, ok := sessions.UserID(r)
			if !ok {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"authentication required"}`))
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), uid)))
		})
	}
}
