// Package userrepo provides data transfer objects and mapping functions for
// user persistence. It implements the repository pattern for the user domain
// aggregate, handling conversion between domain entities and database rows.
package userrepo

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// The username carries a unique index so duplicate registrations fail at the
// store as well as in the repository check.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Email        string    `gorm:"not null"`
	Phone        string    `gorm:"not null"`
	Plan         string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:user"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Email:        u.Email(),
		Phone:        u.Phone(),
		Plan:         u.Plan(),
		Role:         u.Role().String(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Username, dto.PasswordHash, dto.Email, dto.Phone, dto.Plan, user.Role(dto.Role))
}
