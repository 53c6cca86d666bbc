package ports

import (
	"context"

	"laundry/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for laundry request aggregates.
type RequestRepository interface {
	// Add persists a new laundry request.
	Add(ctx context.Context, aggregate *request.LaundryRequest) error
}
