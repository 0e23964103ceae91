// Package auth implements admin session handling for the dashboard API.
// The backend has exactly one privileged principal: an operator who signs
// in with the shared admin password. Sessions ride in a signed cookie.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	SessionName = "crewops-session"

	isAdminKey = "is_admin"
)

// Store is initialised once via InitSessionStore.
var Store *sessions.CookieStore

var log = zap.NewNop()

type ctxKey string

const adminKey ctxKey = "admin"

// InitSessionStore initializes the global session Store using the provided
// session key. The secure flag controls whether cookies are marked Secure;
// it should be true everywhere except local dev over http.
func InitSessionStore(sessionKey string, secure bool, logger *zap.Logger) error {
	if sessionKey == "" {
		return fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   12 * 60 * 60,
	}
	Store = store
	log = logger

	logger.Info("session store initialized", zap.Bool("secure", secure))
	return nil
}

// CheckPassword compares a candidate password against the configured bcrypt
// hash.
func CheckPassword(hash, candidate string) bool {
	if hash == "" || candidate == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}

// SignIn marks the current session as an admin session.
func SignIn(w http.ResponseWriter, r *http.Request) error {
	if Store == nil {
		return fmt.Errorf("session store not initialized")
	}
	sess, _ := Store.Get(r, SessionName)
	sess.Values[isAdminKey] = true
	return sess.Save(r, w)
}

// SignOut clears the session.
func SignOut(w http.ResponseWriter, r *http.Request) error {
	if Store == nil {
		return nil
	}
	sess, _ := Store.Get(r, SessionName)
	sess.Options.MaxAge = -1
	delete(sess.Values, isAdminKey)
	return sess.Save(r, w)
}

// IsAdmin reports whether the request carries an admin session.
func IsAdmin(r *http.Request) bool {
	ok, _ := r.Context().Value(adminKey).(bool)
	return ok
}

// LoadSession injects the admin flag into the request context. A cookie
// that fails to decode (key rotation, tampering) is treated as no session.
// If the session store has not been initialized yet, it is a no-op.
func LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Store == nil {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := Store.Get(r, SessionName)
		if err != nil {
			var scErr securecookie.Error
			if errors.As(err, &scErr) && scErr.IsDecode() {
				log.Debug("session cookie failed to decode; treating as anonymous",
					zap.Error(err))
			}
		}
		if isAdmin, _ := sess.Values[isAdminKey].(bool); isAdmin {
			r = r.WithContext(context.WithValue(r.Context(), adminKey, true))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin guards mutating endpoints. Callers are API clients, so the
// rejection is a JSON 401 rather than a login redirect.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsAdmin(r) {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "admin authentication required",
		})
	})
}
