package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundry/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// AdminSummaryQueryHandler computes the staff dashboard aggregates with a
// handful of scalar queries.
type AdminSummaryQueryHandler struct {
	db *gorm.DB
}

// NewAdminSummaryQueryHandler creates a handler for the dashboard query.
func NewAdminSummaryQueryHandler(db *gorm.DB) AdminSummaryQueryHandler {
	return AdminSummaryQueryHandler{db: db}
}

// Handle executes the dashboard query. Ties for the most frequent item are
// broken alphabetically so the result is stable.
func (h AdminSummaryQueryHandler) Handle(
	ctx context.Context,
	query AdminSummaryQuery,
) (AdminSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AdminSummaryQueryResponse{}, err
	}

	var resp AdminSummaryQueryResponse
	db := h.db.WithContext(ctx)

	err := db.Raw(`SELECT COUNT(*) FROM users`).Row().Scan(&resp.TotalUsers)
	if err != nil {
		return AdminSummaryQueryResponse{}, err
	}

	err = db.Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(total_price), 0),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?)
		FROM orders
	`, order.Pending.String(), order.Completed.String(), order.Cancelled.String()).Row().Scan(
		&resp.TotalOrders,
		&resp.TotalRevenue,
		&resp.PendingOrders,
		&resp.CompletedOrders,
		&resp.CancelledOrders,
	)
	if err != nil {
		return AdminSummaryQueryResponse{}, err
	}

	err = db.Raw(`
		SELECT item_type
		FROM orders
		GROUP BY item_type
		ORDER BY COUNT(*) DESC, item_type ASC
		LIMIT 1
	`).Row().Scan(&resp.MostFrequentItem)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return AdminSummaryQueryResponse{}, err
	}

	return resp, nil
}
