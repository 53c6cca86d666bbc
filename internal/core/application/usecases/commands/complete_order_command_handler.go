package commands

import (
	"context"
	"fmt"
)

// CompleteOrderCommandHandler moves a pending order to Completed.
// The repository applies the transition as a compare-and-swap, so when two
// staff members race on the same order exactly one of them succeeds.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion command. Completing an order that is not
// Pending fails with an InvalidStateTransitionError.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	pendingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = pendingOrder.Complete(); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, pendingOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Append(fmt.Sprintf("Order %s completed for user %s", pendingOrder.ID(), pendingOrder.UserID()))

	return nil
}
