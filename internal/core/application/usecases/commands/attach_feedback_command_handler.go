package commands

import (
	"context"

	"laundry/internal/pkg/errs"
)

// AttachFeedbackCommandHandler stores feedback text on an order.
// Feedback may be written in any status and overwrites earlier feedback.
type AttachFeedbackCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAttachFeedbackCommandHandler creates a handler for order feedback.
func NewAttachFeedbackCommandHandler(uowFactory OrderUoWFactory) AttachFeedbackCommandHandler {
	return AttachFeedbackCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the feedback command. When the caller identified itself,
// an order owned by a different user is reported as not found rather than
// revealing it exists.
func (h *AttachFeedbackCommandHandler) Handle(ctx context.Context, cmd AttachFeedbackCommand) error {
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

	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if actor, ok := cmd.UserID(); ok && !target.UserID().IsEqual(actor) {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}

	if err = target.AttachFeedback(cmd.Text()); err != nil {
		return err
	}

	if err = orderRepo.UpdateFeedback(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
