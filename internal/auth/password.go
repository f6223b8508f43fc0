package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/iwantdrugsxd/evea-sub002/internal/models"
	"github.com/iwantdrugsxd/evea-sub002/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailExists        = errors.New("email already registered")
)

// Authenticator implements password-based registration and login on top
// of the user store, hashing credentials with bcrypt.
type Authenticator struct {
	store storage.Store
}

// NewAuthenticator creates a password authenticator backed by the store.
func NewAuthenticator(store storage.Store) *Authenticator {
	return &Authenticator{store: store}
}

// Register creates a new account with a hashed password.
func (a *Authenticator) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}

	if existing, err := a.store.GetUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(name, email, string(hash))
	if err := a.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate verifies email and password, returning the user if valid.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := a.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
