package commands

import (
	"context"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/request"
	"laundry/internal/pkg/errs"
)

// SubmitRequestCommandHandler handles laundry intake. One transaction writes
// both the request record and the order it spawns, so a crash between the
// two writes can never leave a request without its order.
type SubmitRequestCommandHandler struct {
	uowFactory IntakeUoWFactory
	notifier   Notifier
}

// NewSubmitRequestCommandHandler creates a handler for laundry intake.
func NewSubmitRequestCommandHandler(uowFactory IntakeUoWFactory, notifier Notifier) SubmitRequestCommandHandler {
	return SubmitRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the intake command. The order's total price is fixed here
// from the pricing table (or the default unit price) and never recomputed.
// The notification is recorded only after the transaction commits.
func (h *SubmitRequestCommandHandler) Handle(ctx context.Context, cmd SubmitRequestCommand) error {
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

	exists, err := uow.UserRepository().Exists(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("userId", cmd.UserID())
	}

	unitPrice, err := uow.PricingRepository().UnitPrice(ctx, cmd.ItemType())
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	laundryRequest, err := request.NewLaundryRequest(
		cmd.RequestID(), cmd.UserID(), cmd.ItemType(), cmd.Quantity(),
		cmd.Note(), cmd.ImageURL(), cmd.PaymentMethod(), now,
	)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.UserID(), cmd.ItemType(), cmd.Quantity(), unitPrice,
		cmd.HostelName(), cmd.RoomNumber(), cmd.PickupTimeSlot(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.RequestRepository().Add(ctx, laundryRequest); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Append(fmt.Sprintf("New request for %s by user %s", cmd.ItemType(), cmd.UserID()))

	return nil
}
