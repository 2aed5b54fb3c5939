package sessions

import (
	"time"

	"github.com/sessionapi/go-session-server/users"
)

// Repo defines the interface for session storage. The store exclusively owns
// all session records; callers only ever see copies.
type Repo interface {
	// Create generates a fresh token and inserts a new live session.
	// It fails only if the system entropy source does.
	Create(userID int, username string, role users.Role) (Session, error)

	// Get returns the session for a token if it exists and is unexpired.
	// Absent and expired tokens both yield ok=false, never an error.
	// An expired record is deleted on read.
	Get(token string) (Session, bool)

	// Touch applies an in-place update to a live session. It reports whether
	// the session was live; on a dead or absent token it does nothing.
	Touch(token string, mutate func(*Session)) bool

	// Delete removes the session if present and reports whether anything was
	// removed. Idempotent.
	Delete(token string) bool

	// DeleteExpired removes sessions expired as of now and returns how many
	// were reclaimed. Not required for correctness (Get expires lazily),
	// only for memory hygiene.
	DeleteExpired(now time.Time) int
}
