package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundry/internal/core/domain/model/pricing"

	"gorm.io/gorm"
)

// EstimatePriceQueryHandler computes an order estimate from the pricing
// table, falling back to the default unit price for unlisted item types.
// The estimate uses the same arithmetic as intake, so a submission right
// after an estimate yields the quoted total.
type EstimatePriceQueryHandler struct {
	db *gorm.DB
}

// NewEstimatePriceQueryHandler creates a handler for price estimates.
func NewEstimatePriceQueryHandler(db *gorm.DB) EstimatePriceQueryHandler {
	return EstimatePriceQueryHandler{db: db}
}

// Handle executes the estimate query.
func (h EstimatePriceQueryHandler) Handle(
	ctx context.Context,
	query EstimatePriceQuery,
) (EstimatePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimatePriceQueryResponse{}, err
	}

	unitPrice := pricing.DefaultUnitPrice

	row := h.db.WithContext(ctx).Raw(`
		SELECT price FROM pricing WHERE item_type = ?
	`, query.ItemType()).Row()

	var stored float64
	err := row.Scan(&stored)
	if err == nil {
		unitPrice = stored
	} else if !errors.Is(err, sql.ErrNoRows) {
		return EstimatePriceQueryResponse{}, err
	}

	return EstimatePriceQueryResponse{
		ItemType:   query.ItemType(),
		Quantity:   query.Quantity(),
		UnitPrice:  unitPrice,
		TotalPrice: pricing.Estimate(unitPrice, query.Quantity()),
	}, nil
}
