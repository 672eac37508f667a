package ports

import (
	"context"

	"github.com/saintreact/inventory-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create persists a new account and returns it with the assigned ID.
	// A duplicate email yields domain.ErrUserExists; the storage-layer unique
	// index is the authoritative guard against concurrent registrations.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
