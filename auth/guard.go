package auth

import (
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// Guard wraps a downstream handler with a required-permission set.
//
// Status mapping, kept for compatibility with existing clients:
//   - no bearer token presented at all -> 401
//   - token malformed, mis-signed, or expired -> 403
//   - token valid but lacking a required permission -> 403
//
// Rejections carry no body so a caller cannot probe which permission was
// missing. Guards hold no per-request state; construct one per route at
// startup and reuse it.
type Guard struct {
	verifier *Verifier
	required []Permission
}

// RequireAll creates a guard that admits only identities holding every one
// of the given permissions (subset test, not equality).
func RequireAll(verifier *Verifier, permissions ...Permission) *Guard {
	return &Guard{
		verifier: verifier,
		required: append([]Permission(nil), permissions...),
	}
}

// Wrap returns a handler that enforces the guard before invoking next.
// On success the decoded identity is attached to the request context and is
// retrievable downstream via IdentityFromContext.
func (g *Guard) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := BearerToken(r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		identity, err := g.verifier.Verify(tokenString)
		if err != nil {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		if !identity.HasAllPermissions(g.required) {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		ctx := WithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WrapFunc is Wrap for plain handler functions.
func (g *Guard) WrapFunc(next http.HandlerFunc) http.Handler {
	return g.Wrap(next)
}

// BearerToken extracts the bearer token from the Authorization header.
// Returns ErrMissingCredentials when the header is absent, uses a different
// scheme, or carries an empty token.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrMissingCredentials
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", ErrMissingCredentials
	}
	return token, nil
}
