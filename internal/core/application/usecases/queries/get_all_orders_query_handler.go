package queries

import (
	"context"
	"database/sql"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all orders joined with their owners,
// newest first.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the staff order list.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with owner usernames.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.user_id,
			o.item_type,
			o.quantity,
			o.status,
			o.total_price,
			o.hostel_name,
			o.room_number,
			o.pickup_time_slot,
			o.feedback,
			o.created_at,
			u.username
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetAllOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var id, userID uuid.UUID
		var feedback sql.NullString

		err = rows.Scan(
			&id,
			&userID,
			&resp.ItemType,
			&resp.Quantity,
			&resp.Status,
			&resp.TotalPrice,
			&resp.HostelName,
			&resp.RoomNumber,
			&resp.PickupTimeSlot,
			&feedback,
			&resp.CreatedAt,
			&resp.Username,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = orderID
		resp.UserID = ownerID
		if feedback.Valid {
			resp.Feedback = &feedback.String
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
