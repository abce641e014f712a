package middleware

import (
	"log/slog"
	"net/http"

	"github.com/voltpoint/voltpoint/internal/auth"
	"github.com/voltpoint/voltpoint/internal/session"
)

// SessionConfig holds configuration for the session middleware.
type SessionConfig struct {
	Logger   *slog.Logger
	Sessions *session.Manager
}

// Session returns a middleware that reads the session cookie, injects the
// caller identity into the request context, and slides the cookie expiry
// forward by the full TTL. Requests without a valid session pass through
// with no identity; rejection is the guards' job, not this middleware's.
func Session(cfg SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := cfg.Sessions.Read(r)
			if identity == nil {
				next.ServeHTTP(w, r)
				return
			}

			// Sliding expiry: every authenticated request renews the
			// 24-hour window.
			if err := cfg.Sessions.Refresh(w, r); err != nil {
				cfg.Logger.Warn("failed to refresh session",
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(r.Context())),
				)
			}

			ctx := auth.ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
