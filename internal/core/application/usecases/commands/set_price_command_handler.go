package commands

import (
	"context"
)

// SetPriceCommandHandler upserts the unit price for an item type.
// Later intakes use the new price; already-placed orders keep the total
// price they were created with.
type SetPriceCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewSetPriceCommandHandler creates a handler for pricing updates.
func NewSetPriceCommandHandler(uowFactory PricingUoWFactory) SetPriceCommandHandler {
	return SetPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pricing command.
func (h *SetPriceCommandHandler) Handle(ctx context.Context, cmd SetPriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PricingRepository().Upsert(ctx, cmd.Entry()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
