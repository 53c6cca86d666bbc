package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus persists a status transition out of Pending as a
	// compare-and-swap: the row is updated only while its stored status is
	// still Pending. When a concurrent transition won the race, an
	// InvalidStateTransitionError is returned so exactly one caller ever
	// succeeds; an unknown id yields an ObjectNotFoundError.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// UpdateFeedback persists the order's feedback text. Feedback may be
	// written in any status, including terminal ones.
	UpdateFeedback(ctx context.Context, aggregate *order.Order) error

	// GetAllByUser retrieves all orders owned by the given user.
	// Returns an empty slice when the user has none.
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)
}
