package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrCompletedOrdersQueryIsNotConstructed = errors.New(
	"CompletedOrdersQuery must be created via NewCompletedOrdersQuery constructor",
)

// CompletedOrdersQuery retrieves a customer's completed orders, the ones a
// receipt can be downloaded for.
type CompletedOrdersQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompletedOrdersQuery creates a query for a customer's completed orders.
func NewCompletedOrdersQuery(userID kernel.UUID) (CompletedOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return CompletedOrdersQuery{}, err
	}

	return CompletedOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCompletedOrdersQueryIsNotConstructed)
}

// UserID returns the customer whose completed orders are requested.
func (q CompletedOrdersQuery) UserID() kernel.UUID {
	return q.userID
}
