package sessions

import (
	"time"

	"github.com/sessionapi/go-session-server/users"
)

// Session binds an opaque token to an authenticated identity for a bounded
// time window. Username and Role are denormalized copies cached at login;
// users are immutable at runtime so the copies cannot drift. UserID remains
// the authoritative reference for handlers that need the full user record.
type Session struct {
	Token     string     // Opaque unguessable identifier, generated at creation
	UserID    int        // Reference to the owning user record
	Username  string     // Cached at login for access without a user lookup
	Role      users.Role // Cached at login
	LoginTime time.Time  // When the session was created
	ExpiresAt time.Time  // LoginTime + TTL
}

// Live reports whether the session is valid at the given instant.
func (s Session) Live(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
