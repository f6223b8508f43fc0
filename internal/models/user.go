package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered marketplace account (event host). The planner
// core never sees users; they exist for the API's auth layer.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	Name  string `json:"name"`
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password. Never
	// serialized in API responses.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`
}

// NewUser constructs a user with a fresh ID and creation timestamp.
func NewUser(name, email, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
