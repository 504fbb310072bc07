package middleware

import (
	"context"
	"net/http"
	"strings"

	"florabot/internal/models"
)

type contextKey int

const contextKeyIdentity contextKey = iota

// TokenVerifier validates an identity token string.
type TokenVerifier interface {
	Verify(tokenString string) (*models.TokenPayload, error)
}

// Auth extracts the identity token from the Authorization header (or the
// auth_token cookie the web form sets) and puts the verified identity into
// the request context.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			payload, err := verifier.Verify(tokenString)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), payload.Identity)))
		})
	}
}

// WithIdentity returns a context carrying the given identity, the same way
// Auth stores it.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, contextKeyIdentity, identity)
}

// IdentityFromContext returns the verified submitter identity.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(contextKeyIdentity).(models.Identity)
	return identity, ok
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if cookie, err := r.Cookie("auth_token"); err == nil {
		return cookie.Value
	}
	return ""
}
