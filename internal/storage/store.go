// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/ametov/pointhub/internal/models"
)

// Store defines the interface for user and result persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username.
	// Returns (nil, nil) if no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) if no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// AddResult persists a new classification result, assigning ID and
	// CreatedAt if unset.
	AddResult(ctx context.Context, result *models.Result) error

	// ListResultsByOwner returns the given user's results, most recent
	// first.
	ListResultsByOwner(ctx context.Context, ownerID string) ([]models.Result, error)

	// ClearResultsByOwner deletes all of the given user's results and
	// returns how many rows were removed.
	ClearResultsByOwner(ctx context.Context, ownerID string) (int64, error)

	// Close releases any resources held by the store.
	Close() error
}
