package auth_test

import (
	"testing"
	"time"

	"github.com/sessionapi/go-session-server/auth"
	"github.com/sessionapi/go-session-server/internal/apperrors"
	"github.com/sessionapi/go-session-server/sessions"
	"github.com/sessionapi/go-session-server/users"
	"github.com/stretchr/testify/require"
)

const (
	testAdminUsername = "admin"
	testAdminPassword = "admin123"
	testUserUsername  = "user1"
	testUserPassword  = "user123"
	testTTL           = 30 * time.Minute
)

// testFixture holds all test dependencies
type testFixture struct {
	userRepo    users.Repo
	sessionRepo sessions.Repo
	service     *auth.AuthenticationService
}

// setupTestFixture creates a new test fixture with all dependencies
func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	adminHash, err := users.HashPassword(testAdminPassword)
	require.NoError(t, err)
	userHash, err := users.HashPassword(testUserPassword)
	require.NoError(t, err)

	ur, err := users.NewInMemoryUserRepo([]*users.User{
		{ID: 1, Username: testAdminUsername, Email: "admin@test.com", PasswordHash: adminHash, Role: users.RoleAdmin},
		{ID: 2, Username: testUserUsername, Email: "user1@test.com", PasswordHash: userHash, Role: users.RoleUser},
	})
	require.NoError(t, err)

	sr := sessions.NewInMemorySessionRepo(testTTL)

	service, err := auth.NewAuthenticationService(auth.Repos{Users: ur, Sessions: sr}, auth.BcryptVerifier{})
	require.NoError(t, err)

	return &testFixture{userRepo: ur, sessionRepo: sr, service: service}
}

func TestNewAuthenticationServiceValidatesDependencies(t *testing.T) {
	_, err := auth.NewAuthenticationService(auth.Repos{}, auth.BcryptVerifier{})
	require.Error(t, err)

	sr := sessions.NewInMemorySessionRepo(testTTL)
	_, err = auth.NewAuthenticationService(auth.Repos{Sessions: sr}, auth.BcryptVerifier{})
	require.Error(t, err)

	ur, err := users.NewInMemoryUserRepo(nil)
	require.NoError(t, err)
	_, err = auth.NewAuthenticationService(auth.Repos{Users: ur, Sessions: sr}, nil)
	require.Error(t, err)
}

func TestLoginSuccessCreatesResolvableSession(t *testing.T) {
	f := setupTestFixture(t)

	session, user, err := f.service.Login(testAdminUsername, testAdminPassword)
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	require.Equal(t, user.ID, session.UserID)
	require.Equal(t, testAdminUsername, session.Username)
	require.Equal(t, users.RoleAdmin, session.Role)

	resolved, ok := f.service.Resolve(session.Token)
	require.True(t, ok)
	require.Equal(t, session, resolved)
}

func TestLoginWrongPassword(t *testing.T) {
	f := setupTestFixture(t)

	_, _, err := f.service.Login(testUserUsername, "wrong-password")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	f := setupTestFixture(t)

	_, _, err := f.service.Login("nobody", testUserPassword)
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginFailureCreatesNoSession(t *testing.T) {
	f := setupTestFixture(t)

	_, _, err := f.service.Login(testUserUsername, "wrong-password")
	require.Error(t, err)

	_, ok := f.service.Resolve("")
	require.False(t, ok)
	require.Equal(t, 0, f.sessionRepo.(*sessions.InMemorySessionRepo).Len())
}

func TestReloginIssuesNewTokenAndKeepsOldSession(t *testing.T) {
	f := setupTestFixture(t)

	first, _, err := f.service.Login(testAdminUsername, testAdminPassword)
	require.NoError(t, err)
	second, _, err := f.service.Login(testAdminUsername, testAdminPassword)
	require.NoError(t, err)

	require.NotEqual(t, first.Token, second.Token)

	// Multiple concurrent sessions per user are allowed; the earlier token
	// stays valid until it expires or is logged out.
	_, ok := f.service.Resolve(first.Token)
	require.True(t, ok)
	_, ok = f.service.Resolve(second.Token)
	require.True(t, ok)
}

func TestResolveUnknownToken(t *testing.T) {
	f := setupTestFixture(t)

	_, ok := f.service.Resolve("never-issued")
	require.False(t, ok)
}

func TestLogoutIsIdempotent(t *testing.T) {
	f := setupTestFixture(t)

	session, _, err := f.service.Login(testUserUsername, testUserPassword)
	require.NoError(t, err)

	require.True(t, f.service.Logout(session.Token))
	require.False(t, f.service.Logout(session.Token))
	require.False(t, f.service.Logout(""))

	_, ok := f.service.Resolve(session.Token)
	require.False(t, ok)
}
