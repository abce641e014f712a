package middleware

import (
	"fmt"
	"net/http"

	"github.com/voltpoint/voltpoint/internal/auth"
	"github.com/voltpoint/voltpoint/internal/model"
)

// RequireAuth returns middleware that rejects requests without a valid
// session. Must be applied after the Session middleware. No data store is
// touched before the gate passes.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth.IdentityFromContext(r.Context()) == nil {
				writeGuardError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole returns middleware that enforces a specific role.
// Missing session yields 401; a session with the wrong role yields 403.
func RequireRole(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := auth.IdentityFromContext(r.Context())
			if identity == nil {
				writeGuardError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}
			if identity.Role != role {
				writeGuardError(w, http.StatusForbidden, "FORBIDDEN",
					fmt.Sprintf("Requires %s role", role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for the admin gate.
func RequireAdmin() func(http.Handler) http.Handler {
	return RequireRole(model.RoleAdmin)
}

// RequireUser is a convenience middleware for user-only operations,
// such as booking reservations.
func RequireUser() func(http.Handler) http.Handler {
	return RequireRole(model.RoleUser)
}

// writeGuardError writes a guard rejection response.
func writeGuardError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(fmt.Sprintf(`{"error":%q,"code":%q}`, message, code)))
}
