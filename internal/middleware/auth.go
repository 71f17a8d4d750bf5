package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/yakhltv/yakhltv-api/internal/auth"
	"github.com/yakhltv/yakhltv-api/internal/httputil"
)

// RequireEditor only lets requests through that carry a valid bearer token with the
// admin or editor role.
func RequireEditor(tokens *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httputil.Unauthorized(w, "no auth", nil)
				return
			}

			parts := strings.Split(header, " ")
			if len(parts) != 2 {
				httputil.Unauthorized(w, "bad auth", nil)
				return
			}

			claims, err := tokens.Parse(parts[1])
			if err != nil {
				httputil.Unauthorized(w, "invalid token", err)
				return
			}
			if !claims.Role.CanEdit() {
				httputil.Forbidden(w, "forbidden")
				return
			}

			ctx := context.WithValue(r.Context(), auth.ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
