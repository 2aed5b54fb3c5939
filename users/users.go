package users

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role represents a user's access tier.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is immutable reference data. The directory is seeded once at startup
// and never mutated at runtime, so sessions may safely cache username/role.
type User struct {
	ID           int       `json:"id"`       // Unique identifier for the user
	Username     string    `json:"username"` // Unique username
	Email        string    `json:"email"`    // User's email address
	PasswordHash string    `json:"-"`        // Hashed version of the user's password - never serialize
	Role         Role      `json:"role"`     // Access tier: admin or user
	DateJoined   time.Time `json:"date_joined,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
