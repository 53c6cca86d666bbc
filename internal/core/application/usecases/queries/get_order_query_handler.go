package queries

import (
	"context"
	"database/sql"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order row from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. An unknown identifier fails with an
// ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
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
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	resp, err := scanOrderResponse(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

// scanOrderResponse reads one order row positioned under the cursor. The
// column order must match the SELECT lists of the order queries.
func scanOrderResponse(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var id, userID uuid.UUID
	var feedback sql.NullString

	err := rows.Scan(
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
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	resp.ID = orderID
	resp.UserID = ownerID
	if feedback.Valid {
		resp.Feedback = &feedback.String
	}

	return resp, nil
}
