package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrOrderHistoryQueryIsNotConstructed = errors.New(
	"OrderHistoryQuery must be created via NewOrderHistoryQuery constructor",
)

// istZone is the campus timezone used to resolve a partial month/year filter.
var istZone = time.FixedZone("IST", 5*3600+30*60)

// OrderHistoryQuery retrieves a customer's orders, optionally filtered to a
// single month. When only one of month/year is given, the missing half is
// filled in from the current date in IST. With neither given, the full
// history is returned.
type OrderHistoryQuery struct {
	userID    kernel.UUID
	month     int
	year      int
	hasPeriod bool

	guard guard.ConstructorGuard
}

// NewOrderHistoryQuery creates a query for a customer's order history.
// month and year are optional and may be nil.
func NewOrderHistoryQuery(userID kernel.UUID, month, year *int) (OrderHistoryQuery, error) {
	if err := userID.Validate(); err != nil {
		return OrderHistoryQuery{}, err
	}

	q := OrderHistoryQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}

	if month == nil && year == nil {
		return q, nil
	}

	now := time.Now().In(istZone)
	q.hasPeriod = true
	q.month = int(now.Month())
	q.year = now.Year()

	if month != nil {
		if *month < 1 || *month > 12 {
			return OrderHistoryQuery{}, errs.NewValueIsInvalidError("month")
		}
		q.month = *month
	}
	if year != nil {
		if *year < 1 {
			return OrderHistoryQuery{}, errs.NewValueIsInvalidError("year")
		}
		q.year = *year
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q OrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrOrderHistoryQueryIsNotConstructed)
}

// UserID returns the customer whose history is requested.
func (q OrderHistoryQuery) UserID() kernel.UUID {
	return q.userID
}

// HasPeriod reports whether a month filter applies.
func (q OrderHistoryQuery) HasPeriod() bool {
	return q.hasPeriod
}

// Month returns the resolved filter month. Only meaningful when HasPeriod.
func (q OrderHistoryQuery) Month() int {
	return q.month
}

// Year returns the resolved filter year. Only meaningful when HasPeriod.
func (q OrderHistoryQuery) Year() int {
	return q.year
}
