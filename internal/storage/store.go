// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/iwantdrugsxd/evea-sub002/internal/models"
)

// ErrNotFound is returned for keyed lookups that match nothing.
var ErrNotFound = errors.New("not found")

// Store defines the persistence surface the planner service consumes:
// read-only catalog queries, the session snapshot store, and user
// accounts for the auth layer. The abstraction allows swapping backends
// (SQLite, PostgreSQL, ...) without changing the service layer.
type Store interface {
	// ListCategories returns every service category.
	ListCategories(ctx context.Context) ([]models.ServiceCategory, error)

	// ListVendorCards returns the cards for a category, or all cards
	// when categoryID is empty. The engine never mutates cards.
	ListVendorCards(ctx context.Context, categoryID string) ([]models.VendorCard, error)

	// GetVendorCard retrieves one card by id.
	GetVendorCard(ctx context.Context, cardID string) (*models.VendorCard, error)

	// GetVendor retrieves the vendor owning a card.
	GetVendor(ctx context.Context, vendorID string) (*models.Vendor, error)

	// ListReviews returns the reviews backing a card's aggregates,
	// newest first.
	ListReviews(ctx context.Context, cardID string) ([]models.Review, error)

	// SaveSnapshot upserts the serialized session snapshot for a
	// session id.
	SaveSnapshot(ctx context.Context, sessionID string, data []byte) error

	// LoadSnapshot returns the stored snapshot payload, or ErrNotFound.
	LoadSnapshot(ctx context.Context, sessionID string) ([]byte, error)

	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email, or ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by id, or ErrNotFound.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
