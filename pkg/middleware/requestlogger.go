package middleware

import (
	"log/slog"
	"net/http"

	"github.com/salesdash/api/pkg/logger"
)

// RequestLogger builds a request-scoped logger enriched with request_id,
// user_id, and trace context, and stores it via logger.NewContext so
// downstream handlers can retrieve it with logger.FromContext.
//
// Mount it after RequestLogging (which sets request_id) and after Auth
// (which sets the user ID) on protected routes.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if userID := UserIDFromContext(ctx); userID != "" {
				ctx = logger.WithUserID(ctx, userID)
			}

			enriched := logger.WithContext(ctx, base)
			ctx = logger.NewContext(ctx, enriched)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
