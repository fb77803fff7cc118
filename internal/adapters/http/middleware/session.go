package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"turfease/internal/adapters/storage/session"
	"turfease/internal/domain/identity"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const (
	tokenContextKey    contextKey = "sessionToken"
	identityContextKey contextKey = "identity"
)

const sessionCookieName = "turfease_session"

// SecureCookies controls the Secure flag on issued cookies. Set true in
// production.
var SecureCookies = false

// EnsureSession returns middleware that guarantees every request carries a
// session token. A visitor without a cookie gets a fresh token issued on the
// spot. The resolved identity for the token is placed in the request context
// so handlers and templates never touch the alias keys directly.
// POST: context holds a non-empty token and the resolved (possibly zero) identity
func EnsureSession(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if cookie, err := r.Cookie(sessionCookieName); err == nil {
				token = cookie.Value
			}
			if token == "" {
				generated, err := generateToken()
				if err != nil {
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				token = generated
				setSessionCookie(w, token)
			}

			id := identity.Identity{}
			if snap, err := store.Snapshot(r.Context(), token); err == nil {
				id = identity.Resolve(snap)
			}

			ctx := context.WithValue(r.Context(), tokenContextKey, token)
			ctx = context.WithValue(ctx, identityContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser blocks requests without a user token.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IdentityFromContext(r.Context()).IsUser() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin blocks requests without an admin token.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IdentityFromContext(r.Context()).IsAdmin() {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// TokenFromContext extracts the session token, empty when EnsureSession did
// not run.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

// IdentityFromContext extracts the resolved identity, zero when
// EnsureSession did not run.
func IdentityFromContext(ctx context.Context) identity.Identity {
	id, _ := ctx.Value(identityContextKey).(identity.Identity)
	return id
}

// ContextWithSession returns a context with the token and identity set.
// Intended for use in tests.
func ContextWithSession(ctx context.Context, token string, id identity.Identity) context.Context {
	ctx = context.WithValue(ctx, tokenContextKey, token)
	return context.WithValue(ctx, identityContextKey, id)
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   86400, // 24 hours
	})
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
