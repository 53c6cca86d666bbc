// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"laundry/internal/adapters/out/postgres/userrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its string form so read-side SQL stays legible. The
// user relation carries ON DELETE CASCADE: removing an account removes its
// orders.
type OrderDTO struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID        `gorm:"type:uuid;index;not null"`
	User           userrepo.UserDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ItemType       string           `gorm:"index;not null"`
	Quantity       int              `gorm:"not null"`
	Status         string           `gorm:"type:varchar(16);index;not null"`
	TotalPrice     float64          `gorm:"not null"`
	HostelName     string           `gorm:"not null"`
	RoomNumber     string           `gorm:"not null"`
	PickupTimeSlot string           `gorm:"not null"`
	CreatedAt      time.Time        `gorm:"index;not null"`
	Feedback       *string
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:             o.ID().Bytes(),
		UserID:         o.UserID().Bytes(),
		ItemType:       o.ItemType(),
		Quantity:       o.Quantity(),
		Status:         o.Status().String(),
		TotalPrice:     o.TotalPrice(),
		HostelName:     o.HostelName(),
		RoomNumber:     o.RoomNumber(),
		PickupTimeSlot: o.PickupTimeSlot(),
		CreatedAt:      o.CreatedAt(),
		Feedback:       o.Feedback(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate, including the stored total price,
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, ok := order.StatusFromString(dto.Status)
	if !ok {
		return nil, errs.NewValueIsInvalidError("status")
	}

	return order.RestoreOrder(
		id,
		userID,
		dto.ItemType,
		dto.Quantity,
		status,
		dto.TotalPrice,
		dto.HostelName,
		dto.RoomNumber,
		dto.PickupTimeSlot,
		dto.CreatedAt,
		dto.Feedback,
	)
}
