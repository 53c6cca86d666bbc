package queries

import (
	"errors"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrEstimatePriceQueryIsNotConstructed = errors.New(
	"EstimatePriceQuery must be created via NewEstimatePriceQuery constructor",
)

// EstimatePriceQuery computes what an order would cost without placing it.
type EstimatePriceQuery struct {
	itemType string
	quantity int

	guard guard.ConstructorGuard
}

// NewEstimatePriceQuery creates a query to estimate an order total.
func NewEstimatePriceQuery(itemType string, quantity int) (EstimatePriceQuery, error) {
	if itemType == "" {
		return EstimatePriceQuery{}, errs.NewValueIsRequiredError("itemType")
	}
	if quantity <= 0 {
		return EstimatePriceQuery{}, errs.NewValueIsInvalidError("quantity")
	}

	return EstimatePriceQuery{
		itemType: itemType,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q EstimatePriceQuery) Validate() error {
	return q.guard.Validate(ErrEstimatePriceQueryIsNotConstructed)
}

// ItemType returns the garment type to price.
func (q EstimatePriceQuery) ItemType() string {
	return q.itemType
}

// Quantity returns the number of items to price.
func (q EstimatePriceQuery) Quantity() int {
	return q.quantity
}

// EstimatePriceQueryResponse is the computed estimate.
type EstimatePriceQueryResponse struct {
	ItemType   string
	Quantity   int
	UnitPrice  float64
	TotalPrice float64
}
