package auth

import (
	"fmt"

	"github.com/sessionapi/go-session-server/internal/apperrors"
	"github.com/sessionapi/go-session-server/sessions"
	"github.com/sessionapi/go-session-server/users"
)

// Repos holds all repository dependencies for the AuthenticationService
type Repos struct {
	Users    users.Repo    // Repository for the user directory
	Sessions sessions.Repo // Repository for session data
}

// AuthenticationService owns the session lifecycle: it checks credentials,
// issues sessions on login, resolves tokens for the auth gate, and destroys
// sessions on logout.
type AuthenticationService struct {
	repos    Repos
	verifier Verifier
}

// NewAuthenticationService initializes a new AuthenticationService with required dependencies.
func NewAuthenticationService(repos Repos, verifier Verifier) (*AuthenticationService, error) {
	if repos.Users == nil {
		return nil, fmt.Errorf("[NewAuthenticationService] Users repo is required")
	}
	if repos.Sessions == nil {
		return nil, fmt.Errorf("[NewAuthenticationService] Sessions repo is required")
	}
	if verifier == nil {
		return nil, fmt.Errorf("[NewAuthenticationService] verifier is required")
	}
	return &AuthenticationService{repos: repos, verifier: verifier}, nil
}

// Login checks the credentials and creates a new session on success.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials so
// the response does not reveal which half failed.
//
// A caller that is already authenticated gets a brand-new token; any
// previous session for the same user stays valid until it expires or is
// logged out. Multiple concurrent sessions per user are allowed.
func (as *AuthenticationService) Login(username, password string) (sessions.Session, *users.User, error) {
	user, err := as.repos.Users.GetByUsername(username)
	if err != nil {
		return sessions.Session{}, nil, apperrors.ErrInvalidCredentials
	}

	if !as.verifier.Verify(password, user.PasswordHash) {
		return sessions.Session{}, nil, apperrors.ErrInvalidCredentials
	}

	session, err := as.repos.Sessions.Create(user.ID, user.Username, user.Role)
	if err != nil {
		return sessions.Session{}, nil, fmt.Errorf("%w: create session: %w", apperrors.ErrInternal, err)
	}
	return session, user, nil
}

// Resolve returns the live session for a token, if any. An empty, unknown or
// expired token resolves to nothing; that is a normal outcome, not an error.
func (as *AuthenticationService) Resolve(token string) (sessions.Session, bool) {
	if token == "" {
		return sessions.Session{}, false
	}
	return as.repos.Sessions.Get(token)
}

// Logout destroys the session for a token and reports whether one existed.
// Calling it with an unknown or already-destroyed token is a no-op.
func (as *AuthenticationService) Logout(token string) bool {
	if token == "" {
		return false
	}
	return as.repos.Sessions.Delete(token)
}
