package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user account.
//
// Users are created once at registration and never mutated afterward.
// Results reference their owner by ID only; there is no back-reference
// collection from User to its results.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the unique login name chosen at registration.
	Username string

	// PasswordHash is the bcrypt hash of the user's password.
	// Never sent to clients.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a user with a fresh ID and creation timestamp.
func NewUser(username, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
