package queries

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrOrdersPerMonthQueryIsNotConstructed = errors.New(
	"OrdersPerMonthQuery must be created via NewOrdersPerMonthQuery constructor",
)

// OrdersPerMonthQuery retrieves the per-month order histogram for the staff
// dashboard. Counts are bucketed by calendar month across all years.
type OrdersPerMonthQuery struct {
	guard guard.ConstructorGuard
}

// NewOrdersPerMonthQuery creates a parameterless histogram query.
func NewOrdersPerMonthQuery() OrdersPerMonthQuery {
	return OrdersPerMonthQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q OrdersPerMonthQuery) Validate() error {
	return q.guard.Validate(ErrOrdersPerMonthQueryIsNotConstructed)
}

// OrdersPerMonthQueryResponse is one histogram bucket. Month runs 1 to 12.
type OrdersPerMonthQueryResponse struct {
	Month int
	Count int
}
