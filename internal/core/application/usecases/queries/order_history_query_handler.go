package queries

import (
	"context"

	"gorm.io/gorm"
)

// OrderHistoryQueryHandler retrieves a customer's orders from the database,
// newest first.
type OrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewOrderHistoryQueryHandler creates a handler for order history queries.
func NewOrderHistoryQueryHandler(db *gorm.DB) OrderHistoryQueryHandler {
	return OrderHistoryQueryHandler{db: db}
}

// Handle executes the history query. An unknown user simply yields an empty
// result.
func (h OrderHistoryQueryHandler) Handle(ctx context.Context, query OrderHistoryQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
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
		WHERE user_id = ?
	`
	args := []any{query.UserID().Bytes()}

	if query.HasPeriod() {
		sqlText += `
		AND EXTRACT(MONTH FROM created_at) = ?
		AND EXTRACT(YEAR FROM created_at) = ?
		`
		args = append(args, query.Month(), query.Year())
	}

	sqlText += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
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
