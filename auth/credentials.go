package auth

import "github.com/sessionapi/go-session-server/users"

// Verifier checks a presented password against a stored credential.
// It is a collaborator of the AuthenticationService so the comparison
// strategy can be swapped without touching the login flow.
type Verifier interface {
	Verify(password, passwordHash string) bool
}

// BcryptVerifier verifies passwords against bcrypt hashes.
type BcryptVerifier struct{}

var _ Verifier = BcryptVerifier{}

func (BcryptVerifier) Verify(password, passwordHash string) bool {
	return users.CheckPasswordHash(password, passwordHash)
}
