package queries

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrAdminSummaryQueryIsNotConstructed = errors.New(
	"AdminSummaryQuery must be created via NewAdminSummaryQuery constructor",
)

// AdminSummaryQuery retrieves the staff dashboard aggregates.
type AdminSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewAdminSummaryQuery creates a parameterless query for the dashboard.
func NewAdminSummaryQuery() AdminSummaryQuery {
	return AdminSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q AdminSummaryQuery) Validate() error {
	return q.guard.Validate(ErrAdminSummaryQueryIsNotConstructed)
}

// AdminSummaryQueryResponse aggregates the dashboard numbers. TotalRevenue
// sums the totals of all orders regardless of status, matching how totals
// were reported historically. MostFrequentItem is empty when there are no
// orders.
type AdminSummaryQueryResponse struct {
	TotalUsers       int
	TotalOrders      int
	PendingOrders    int
	CompletedOrders  int
	CancelledOrders  int
	TotalRevenue     float64
	MostFrequentItem string
}
