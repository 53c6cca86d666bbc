package queries

import (
	"context"

	"gorm.io/gorm"
)

// OrdersPerMonthQueryHandler computes the per-month order histogram.
type OrdersPerMonthQueryHandler struct {
	db *gorm.DB
}

// NewOrdersPerMonthQueryHandler creates a handler for the histogram query.
func NewOrdersPerMonthQueryHandler(db *gorm.DB) OrdersPerMonthQueryHandler {
	return OrdersPerMonthQueryHandler{db: db}
}

// Handle executes the histogram query. Months without orders are omitted.
func (h OrdersPerMonthQueryHandler) Handle(
	ctx context.Context,
	query OrdersPerMonthQuery,
) ([]OrdersPerMonthQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			EXTRACT(MONTH FROM created_at)::int AS month,
			COUNT(*)
		FROM orders
		GROUP BY month
		ORDER BY month
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := make([]OrdersPerMonthQueryResponse, 0)
	for rows.Next() {
		var bucket OrdersPerMonthQueryResponse
		if err = rows.Scan(&bucket.Month, &bucket.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return buckets, nil
}
