package server

import (
	"net/http"
	"time"

	"github.com/sessionapi/go-session-server/internal/config"
)

// CookieTransport encodes and decodes the session token at the wire
// boundary. It never interprets the token's meaning.
//
// Secure and HttpOnly default to off so the cookie can be exercised and
// inspected over plain HTTP from API clients. A production deployment is
// expected to override both via config.
type CookieTransport struct {
	name     string
	ttl      time.Duration
	secure   bool
	httpOnly bool
}

func NewCookieTransport(cfg config.SessionConfig) *CookieTransport {
	return &CookieTransport{
		name:     cfg.GetSessionCookieName(),
		ttl:      cfg.GetSessionTTL(),
		secure:   cfg.GetSessionCookieSecure(),
		httpOnly: cfg.GetSessionCookieHTTPOnly(),
	}
}

// Extract reads the session token from the request cookie. A missing cookie
// yields the empty token.
func (t *CookieTransport) Extract(r *http.Request) string {
	cookie, err := r.Cookie(t.name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Attach sets the session cookie with the same TTL the session store uses.
func (t *CookieTransport) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    token,
		Path:     "/",
		HttpOnly: t.httpOnly,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(t.ttl.Seconds()),
	})
}

// Clear removes the session cookie by expiring it immediately.
func (t *CookieTransport) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    "",
		Path:     "/",
		HttpOnly: t.httpOnly,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// TTL returns the cookie lifetime, which matches the session store TTL.
func (t *CookieTransport) TTL() time.Duration {
	return t.ttl
}
