package queries

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrGetPricingQueryIsNotConstructed = errors.New(
	"GetPricingQuery must be created via NewGetPricingQuery constructor",
)

// GetPricingQuery retrieves the full pricing table.
type GetPricingQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPricingQuery creates a parameterless query for all pricing entries.
func NewGetPricingQuery() GetPricingQuery {
	return GetPricingQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPricingQuery) Validate() error {
	return q.guard.Validate(ErrGetPricingQueryIsNotConstructed)
}

// GetPricingQueryResponse is one pricing table row.
type GetPricingQueryResponse struct {
	ItemType string
	Price    float64
}
