package ports

import (
	"context"

	"laundry/internal/core/domain/model/pricing"
)

// PricingRepository defines the persistence contract for per-item unit prices.
type PricingRepository interface {
	// Upsert inserts the entry or overwrites the price of an existing
	// entry with the same item type.
	Upsert(ctx context.Context, entry pricing.Entry) error

	// UnitPrice returns the stored unit price for the item type, or
	// pricing.DefaultUnitPrice when no entry exists. Never fails on a
	// missing entry.
	UnitPrice(ctx context.Context, itemType string) (float64, error)
}
