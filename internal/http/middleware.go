package http

import (
	"net/http"
	"strings"

	"github.com/cognitax/cognitax/internal/auth"
	"github.com/cognitax/cognitax/internal/http/session"
)

// authenticator rejects requests without a valid bearer token and stores
// the verified identity in the request context.
func authenticator(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			userID, claims, err := tokens.Verify(tokenString)
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := session.NewContext(r.Context(), &session.Session{
				UserID: userID,
				Email:  claims.Email,
				Name:   claims.Name,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
