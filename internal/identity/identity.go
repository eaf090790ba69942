// Package identity provides anonymous per-browser session primitives.
package identity

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// SessionCookieName carries the anonymous wizard session ID.
	SessionCookieName = "heartcheck_session"
	sessionMaxAge     = 24 * time.Hour
)

type contextKey int

const sessionIDKey contextKey = iota

// SessionIDFromContext extracts the session ID from the request context.
func SessionIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(sessionIDKey).(string); ok {
		return v
	}
	return ""
}

func isValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func getOrCreateSessionID(w http.ResponseWriter, r *http.Request, isDev bool) string {
	id := ""
	if c, err := r.Cookie(SessionCookieName); err == nil && isValidSessionID(c.Value) {
		id = c.Value
	} else {
		id = uuid.NewString()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		Expires:  time.Now().Add(sessionMaxAge),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   !isDev,
	})
	return id
}

// Middleware injects an anonymous per-browser session ID. The ID scopes the
// in-process wizard state; no identity is persisted.
func Middleware(isDev bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := getOrCreateSessionID(w, r, isDev)
			ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
