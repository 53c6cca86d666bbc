package pricingrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/pricing"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPricingRepository implements PricingRepository using GORM.
// Pricing entries are value rows keyed by item type, so no aggregate
// tracking is involved.
type GormPricingRepository struct {
	db *gorm.DB
}

// NewGormPricingRepository creates a new GORM pricing repository.
func NewGormPricingRepository(db *gorm.DB) *GormPricingRepository {
	return &GormPricingRepository{db: db}
}

// Upsert inserts the entry or overwrites the price of an existing entry
// with the same item type.
func (r *GormPricingRepository) Upsert(ctx context.Context, entry pricing.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"price"}),
	}).Create(&dto).Error
}

// UnitPrice returns the stored unit price for the item type, falling back to
// pricing.DefaultUnitPrice when no entry exists. A missing entry is not an
// error.
func (r *GormPricingRepository) UnitPrice(ctx context.Context, itemType string) (float64, error) {
	var dto PricingDTO
	err := r.db.WithContext(ctx).First(&dto, "item_type = ?", itemType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pricing.DefaultUnitPrice, nil
	}
	if err != nil {
		return 0, err
	}

	return dto.Price, nil
}
