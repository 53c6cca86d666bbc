// Package pricingrepo provides data transfer objects and mapping functions
// for the per-item unit price table.
package pricingrepo

import (
	"laundry/internal/core/domain/model/pricing"
)

// PricingDTO represents one row of the pricing table.
// Item type is the natural primary key.
type PricingDTO struct {
	ItemType string  `gorm:"primaryKey"`
	Price    float64 `gorm:"not null"`
}

// TableName specifies the database table name for pricing entries.
func (PricingDTO) TableName() string {
	return "pricing"
}

// fromDomain converts a pricing entry to its database representation.
func fromDomain(e pricing.Entry) PricingDTO {
	return PricingDTO{
		ItemType: e.ItemType(),
		Price:    e.Price(),
	}
}
