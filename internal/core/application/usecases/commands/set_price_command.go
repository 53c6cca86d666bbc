package commands

import (
	"errors"

	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/guard"
)

var ErrSetPriceCommandIsNotConstructed = errors.New(
	"SetPriceCommand must be created via NewSetPriceCommand constructor",
)

// SetPriceCommand represents an admin setting the unit price of an item type.
type SetPriceCommand struct { //nolint:recvcheck //using for validation
	entry pricing.Entry

	guard guard.ConstructorGuard
}

// NewSetPriceCommand creates a command to set a per-item unit price.
// Validation of item type and price lives in the pricing entry constructor.
func NewSetPriceCommand(itemType string, price float64) (SetPriceCommand, error) {
	entry, err := pricing.NewEntry(itemType, price)
	if err != nil {
		return SetPriceCommand{}, err
	}

	return SetPriceCommand{
		entry: entry,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPriceCommand) Validate() error {
	return c.guard.Validate(ErrSetPriceCommandIsNotConstructed)
}

// Entry returns the pricing entry to store.
func (c SetPriceCommand) Entry() pricing.Entry {
	return c.entry
}
