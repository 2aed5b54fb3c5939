package sessions_test

import (
	"sync"
	"testing"
	"time"

	"github.com/sessionapi/go-session-server/sessions"
	"github.com/sessionapi/go-session-server/users"
	"github.com/stretchr/testify/require"
)

const testTTL = 30 * time.Minute

// fakeClock is an adjustable clock for expiry tests
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestRepo(clock *fakeClock) *sessions.InMemorySessionRepo {
	return sessions.NewInMemorySessionRepo(testTTL, sessions.WithNowTime(clock.Now))
}

func TestCreateAndGet(t *testing.T) {
	clock := newFakeClock()
	repo := newTestRepo(clock)

	created, err := repo.Create(1, "admin", users.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, created.Token)
	require.Equal(t, clock.Now(), created.LoginTime)
	require.Equal(t, clock.Now().Add(testTTL), created.ExpiresAt)

	resolved, ok := repo.Get(created.Token)
	require.True(t, ok)
	require.Equal(t, created, resolved)
	require.Equal(t, "admin", resolved.Username)
	require.Equal(t, users.RoleAdmin, resolved.Role)
}

func TestGetUnknownToken(t *testing.T) {
	repo := newTestRepo(newFakeClock())

	_, ok := repo.Get("no-such-token")
	require.False(t, ok)

	_, ok = repo.Get("")
	require.False(t, ok)
}

func TestExpiryBoundary(t *testing.T) {
	clock := newFakeClock()
	repo := newTestRepo(clock)

	session, err := repo.Create(1, "admin", users.RoleAdmin)
	require.NoError(t, err)

	// One second before the TTL the session is still live.
	clock.Advance(testTTL - time.Second)
	_, ok := repo.Get(session.Token)
	require.True(t, ok)

	// At exactly the TTL it is gone.
	clock.Advance(time.Second)
	_, ok = repo.Get(session.Token)
	require.False(t, ok)

	// Expiry on read physically removed the entry.
	require.Equal(t, 0, repo.Len())
}

func TestTouchMutatesLiveSession(t *testing.T) {
	clock := newFakeClock()
	repo := newTestRepo(clock)

	session, err := repo.Create(2, "user1", users.RoleUser)
	require.NoError(t, err)

	ok := repo.Touch(session.Token, func(s *sessions.Session) {
		s.Username = "renamed"
	})
	require.True(t, ok)

	resolved, ok := repo.Get(session.Token)
	require.True(t, ok)
	require.Equal(t, "renamed", resolved.Username)
}

func TestTouchDeadSessionIsNoOp(t *testing.T) {
	clock := newFakeClock()
	repo := newTestRepo(clock)

	session, err := repo.Create(2, "user1", users.RoleUser)
	require.NoError(t, err)

	clock.Advance(testTTL)
	require.False(t, repo.Touch(session.Token, func(s *sessions.Session) {
		s.Username = "renamed"
	}))
	require.False(t, repo.Touch("no-such-token", func(s *sessions.Session) {}))
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := newTestRepo(newFakeClock())

	session, err := repo.Create(1, "admin", users.RoleAdmin)
	require.NoError(t, err)

	require.True(t, repo.Delete(session.Token))
	require.False(t, repo.Delete(session.Token))

	_, ok := repo.Get(session.Token)
	require.False(t, ok)
}

func TestDeleteExpired(t *testing.T) {
	clock := newFakeClock()
	repo := newTestRepo(clock)

	_, err := repo.Create(1, "admin", users.RoleAdmin)
	require.NoError(t, err)

	clock.Advance(testTTL / 2)
	fresh, err := repo.Create(2, "user1", users.RoleUser)
	require.NoError(t, err)

	clock.Advance(testTTL / 2) // first session now expired, second at half-life
	removed := repo.DeleteExpired(clock.Now())
	require.Equal(t, 1, removed)
	require.Equal(t, 1, repo.Len())

	_, ok := repo.Get(fresh.Token)
	require.True(t, ok)
}

func TestConcurrentCreateYieldsDistinctTokens(t *testing.T) {
	const n = 128
	repo := newTestRepo(newFakeClock())

	var wg sync.WaitGroup
	tokens := make(chan string, n)
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			session, err := repo.Create(id, "user", users.RoleUser)
			if err != nil {
				errs <- err
				return
			}
			tokens <- session.Token
		}(i)
	}
	wg.Wait()
	close(tokens)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	seen := make(map[string]struct{}, n)
	for token := range tokens {
		_, dup := seen[token]
		require.False(t, dup, "token collision: %s", token)
		seen[token] = struct{}{}
	}
	require.Len(t, seen, n)
	require.Equal(t, n, repo.Len())
}
