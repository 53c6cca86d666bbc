package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPricingQueryHandler retrieves the pricing table sorted by item type.
// Item types without a row fall back to the default unit price at intake,
// so the result only lists explicit overrides.
type GetPricingQueryHandler struct {
	db *gorm.DB
}

// NewGetPricingQueryHandler creates a handler for pricing table reads.
func NewGetPricingQueryHandler(db *gorm.DB) GetPricingQueryHandler {
	return GetPricingQueryHandler{db: db}
}

// Handle executes the query to retrieve all pricing entries.
func (h GetPricingQueryHandler) Handle(
	ctx context.Context,
	query GetPricingQuery,
) ([]GetPricingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			item_type,
			price
		FROM pricing
		ORDER BY item_type
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetPricingQueryResponse, 0)
	for rows.Next() {
		var entry GetPricingQueryResponse
		if err = rows.Scan(&entry.ItemType, &entry.Price); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
