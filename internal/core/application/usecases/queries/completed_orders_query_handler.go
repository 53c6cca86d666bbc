package queries

import (
	"context"

	"laundry/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// CompletedOrdersQueryHandler retrieves a customer's completed orders,
// newest first.
type CompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCompletedOrdersQueryHandler creates a handler for completed order lists.
func NewCompletedOrdersQueryHandler(db *gorm.DB) CompletedOrdersQueryHandler {
	return CompletedOrdersQueryHandler{db: db}
}

// Handle executes the query for the customer's completed orders.
func (h CompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query CompletedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			item_type,
			quantity,
			status,
			total_price,
			hostel_name,
			room_number,
			pickup_time_slot,
			feedback,
			created_at
		FROM orders
		WHERE user_id = ? AND status = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes(), order.Completed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
