// Package pricing provides the per-item-type unit price entry and the
// default fallback used when an item type has no entry of its own.
package pricing

import (
	"errors"
	"fmt"

	"laundry/internal/pkg/errs"
)

// DefaultUnitPrice is the unit price applied to item types that have no
// pricing entry. Price lookups therefore always succeed.
const DefaultUnitPrice = 50.0

// ErrEntryIsNotConstructed is returned when an Entry was not created through NewEntry.
var ErrEntryIsNotConstructed = errors.New("pricing Entry must be created via NewEntry constructor")

// Entry maps one item type to its unit price. Item type is the natural key;
// admin upserts replace the price of an existing entry.
type Entry struct {
	itemType string
	price    float64

	isConstructed bool
}

// NewEntry creates a pricing entry. The item type must not be empty and the
// price must not be negative.
func NewEntry(itemType string, price float64) (Entry, error) {
	if itemType == "" {
		return Entry{}, errs.NewValueIsRequiredError("itemType")
	}
	if price < 0 {
		return Entry{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}

	return Entry{
		itemType:      itemType,
		price:         price,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was created through NewEntry.
func (e Entry) Validate() error {
	if !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ItemType returns the item type key.
func (e Entry) ItemType() string {
	return e.itemType
}

// Price returns the unit price.
func (e Entry) Price() float64 {
	return e.price
}

// Estimate computes the price of quantity items at the given unit price.
// Pure computation with no side effects.
func Estimate(unitPrice float64, quantity int) float64 {
	return unitPrice * float64(quantity)
}
