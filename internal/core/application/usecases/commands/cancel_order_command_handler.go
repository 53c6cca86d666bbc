package commands

import (
	"context"
	"fmt"

	"laundry/internal/pkg/errs"
)

// CancelOrderCommandHandler moves a pending order to Cancelled on behalf of
// its owner. The repository applies the transition as a compare-and-swap, so
// a cancel racing a completion lets exactly one side win.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command. When the caller identified
// itself, an order owned by a different user is reported as not found rather
// than revealing it exists.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if actor, ok := cmd.UserID(); ok && !pendingOrder.UserID().IsEqual(actor) {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}

	if err = pendingOrder.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, pendingOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Append(fmt.Sprintf("Order %s cancelled by user %s", pendingOrder.ID(), pendingOrder.UserID()))

	return nil
}
