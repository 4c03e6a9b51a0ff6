package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/givefund/givefund/pkg/utils"
)

type ContextKey string

const ContributorIDKey ContextKey = "contributorID"

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), ContributorIDKey, claims.ContributorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthMiddleware attributes the contributor when a valid token is
// present but lets anonymous requests through. Used by the direct donation
// endpoint, which accepts guest contributions.
func OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), ContributorIDKey, claims.ContributorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ContributorIDFromContext returns the authenticated contributor id, if any.
func ContributorIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(ContributorIDKey).(int)
	return id, ok
}
