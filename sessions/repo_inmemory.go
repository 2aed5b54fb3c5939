package sessions

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/sessionapi/go-session-server/users"
)

const tokenLength = 32 // bytes of entropy per session token

// InMemorySessionRepo is an in-memory implementation of Repo. A single
// RWMutex serializes all operations; contention is expected to be low and
// every operation is O(1) and non-blocking.
type InMemorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
	nowTime  func() time.Time
}

// InMemorySessionRepoOption modifies an InMemorySessionRepo instance.
type InMemorySessionRepoOption func(*InMemorySessionRepo)

// WithNowTime sets the clock function (primarily for testing expiry).
func WithNowTime(nowFunc func() time.Time) InMemorySessionRepoOption {
	return func(r *InMemorySessionRepo) {
		r.nowTime = nowFunc
	}
}

// NewInMemorySessionRepo creates a session store whose sessions expire ttl
// after creation.
func NewInMemorySessionRepo(ttl time.Duration, options ...InMemorySessionRepoOption) *InMemorySessionRepo {
	r := &InMemorySessionRepo{
		sessions: make(map[string]Session),
		ttl:      ttl,
		nowTime:  time.Now,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *InMemorySessionRepo) Create(userID int, username string, role users.Role) (Session, error) {
	token, err := generateToken()
	if err != nil {
		// Entropy failure is transient on some platforms; retry once
		// before treating it as fatal.
		token, err = generateToken()
		if err != nil {
			return Session{}, fmt.Errorf("session token generation: %w", err)
		}
	}

	now := r.nowTime()
	session := Session{
		Token:     token,
		UserID:    userID,
		Username:  username,
		Role:      role,
		LoginTime: now,
		ExpiresAt: now.Add(r.ttl),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = session
	return session, nil
}

func (r *InMemorySessionRepo) Get(token string) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[token]
	if !ok {
		return Session{}, false
	}
	if !session.Live(r.nowTime()) {
		delete(r.sessions, token)
		return Session{}, false
	}
	return session, true
}

func (r *InMemorySessionRepo) Touch(token string, mutate func(*Session)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[token]
	if !ok || !session.Live(r.nowTime()) {
		return false
	}
	mutate(&session)
	session.Token = token // the mutator must not rekey the record
	r.sessions[token] = session
	return true
}

func (r *InMemorySessionRepo) Delete(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[token]
	if ok {
		delete(r.sessions, token)
	}
	return ok
}

func (r *InMemorySessionRepo) DeleteExpired(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for token, session := range r.sessions {
		if !session.Live(now) {
			delete(r.sessions, token)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions, expired entries included.
func (r *InMemorySessionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func generateToken() (string, error) {
	bytes := make([]byte, tokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
