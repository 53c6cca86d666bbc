// Package requestrepo provides data transfer objects and mapping functions
// for laundry request persistence.
package requestrepo

import (
	"time"

	"laundry/internal/adapters/out/postgres/userrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting laundry request
// aggregates. Requests cascade-delete with their owning user.
type RequestDTO struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID        `gorm:"type:uuid;index;not null"`
	User          userrepo.UserDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ItemType      string           `gorm:"not null"`
	Quantity      int              `gorm:"not null"`
	Note          *string
	ImageURL      *string
	PaymentMethod *string
	Status        string    `gorm:"type:varchar(16);not null;default:Pending"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the database table name for laundry request entities.
func (RequestDTO) TableName() string {
	return "laundry_requests"
}

// fromDomain converts a laundry request aggregate to its database representation.
func fromDomain(r *request.LaundryRequest) RequestDTO {
	return RequestDTO{
		ID:            r.ID().Bytes(),
		UserID:        r.UserID().Bytes(),
		ItemType:      r.ItemType(),
		Quantity:      r.Quantity(),
		Note:          r.Note(),
		ImageURL:      r.ImageURL(),
		PaymentMethod: r.PaymentMethod(),
		Status:        r.Status(),
		CreatedAt:     r.CreatedAt(),
	}
}

// toDomain converts a database DTO to a laundry request aggregate.
func toDomain(dto RequestDTO) (*request.LaundryRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return request.RestoreLaundryRequest(
		id, userID, dto.ItemType, dto.Quantity,
		dto.Note, dto.ImageURL, dto.PaymentMethod, dto.CreatedAt,
	)
}
