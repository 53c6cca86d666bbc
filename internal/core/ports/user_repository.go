package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. A duplicate username fails with an
	// ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves a user by its unique username.
	// Fails with an ObjectNotFoundError when no such account exists.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// Exists reports whether a user with the given identifier exists.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
