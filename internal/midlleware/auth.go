package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"

	"registros/internal/session"
)

// SessionName is the gorilla cookie session carrying the auth token.
const SessionName = "app-session"

// TokenKey is where the session token lives inside the cookie session.
const TokenKey = "token"

type usernameContextKey struct{}

// UsernameFromContext returns the authenticated username set by the gate.
func UsernameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(usernameContextKey{}).(string)
	return name, ok
}

// Token extracts the session token from the request cookie, or "".
func Token(store sessions.Store, r *http.Request) string {
	s, _ := store.Get(r, SessionName)
	token, _ := s.Values[TokenKey].(string)
	return token
}

// RequireAuth gates the protected pages: requests whose token does not
// belong to the active session are redirected to the login page. Every
// other path passes through untouched.
func RequireAuth(store sessions.Store, manager *session.Manager, next http.Handler) http.Handler {
	protectedPaths := map[string]bool{
		"/index":     true,
		"/registros": true,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !protectedPaths[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		token := Token(store, r)
		username, ok := manager.CurrentUser(token)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), usernameContextKey{}, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
