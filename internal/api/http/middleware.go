package http

import (
	"context"
	"net/http"
	"strings"

	"evrental-backend/internal/security"
)

type contextKey string

const userClaimsKey contextKey = "user_claims"

// AuthMiddleware validates the bearer token and stashes the claims on the
// request context.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}
			if claims.Type != security.TokenTypeAccess {
				writeError(w, http.StatusUnauthorized, security.ErrWrongTokenType.Error())
				return
			}

			ctx := context.WithValue(r.Context(), userClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// claimsFrom extracts the authenticated user's claims from the context.
func claimsFrom(r *http.Request) *security.UserClaims {
	claims, _ := r.Context().Value(userClaimsKey).(*security.UserClaims)
	return claims
}
