package api

import (
	"crypto/subtle"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const sessionCookieName = "portfolio_admin_session"

// sessionStore holds the single admin session token. The auth.Manager owns
// the actual session lifetime; the token only binds the browser cookie to
// the process that issued it.
type sessionStore struct {
	mu    sync.Mutex
	token string
}

func (s *sessionStore) issue() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = uuid.NewString()
	return s.token
}

func (s *sessionStore) valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.token), []byte(token)) == 1
}

func (s *sessionStore) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// AuthMiddleware rejects requests without a valid admin session. The cookie
// token must match the issued one and the underlying session must still be
// unexpired; expiry is checked lazily by the auth manager.
func (a *API) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || !a.sessions.valid(cookie.Value) {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !a.auth.Authenticated() {
			a.sessions.clear()
			clearSessionCookie(w, r)
			writeError(w, http.StatusUnauthorized, "session expired")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestIsSecure(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}

func writeSessionCookie(w http.ResponseWriter, r *http.Request, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestIsSecure(r),
		SameSite: http.SameSiteLaxMode,
		Expires:  expiresAt,
	})
}

func clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestIsSecure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
