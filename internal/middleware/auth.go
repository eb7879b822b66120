package middleware

import (
	"net/http"

	"bangazon-be/internal/auth"
	"bangazon-be/internal/logger"
	"bangazon-be/internal/utils"

	"go.uber.org/zap"
)

// Auth verifies the bearer token when one is present. Requests without an
// Authorization header pass through anonymously; a malformed header or a bad
// or expired token is rejected.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := auth.BearerToken(r)
			if err != nil {
				utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
				return
			}
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, tokenStr)
			if err != nil {
				logger.FromCtx(r.Context()).Debug("rejected token", zap.Error(err))
				utils.WriteJSONError(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := auth.WithUserID(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests. Mount it after Auth.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.UserIDFrom(r.Context()); !ok {
			utils.WriteJSONError(w, "Authentication credentials were not provided", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
