package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrAttachFeedbackCommandIsNotConstructed = errors.New(
	"AttachFeedbackCommand must be created via NewAttachFeedbackCommand constructor",
)

// AttachFeedbackCommand represents a customer leaving feedback on an order.
type AttachFeedbackCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID
	hasUser bool
	text    string

	guard guard.ConstructorGuard
}

// NewAttachFeedbackCommand creates a command to attach feedback text to an
// order. The text must not be empty. userID is optional: when supplied, only
// the order's owner may leave feedback.
func NewAttachFeedbackCommand(orderID kernel.UUID, userID *kernel.UUID, text string) (AttachFeedbackCommand, error) {
	cmd := AttachFeedbackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setText(text),
	); err != nil {
		return AttachFeedbackCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrAttachFeedbackCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving feedback.
func (c AttachFeedbackCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the calling customer's identifier and whether the caller
// identified itself.
func (c AttachFeedbackCommand) UserID() (kernel.UUID, bool) {
	return c.userID, c.hasUser
}

// Text returns the feedback text.
func (c AttachFeedbackCommand) Text() string {
	return c.text
}

func (c *AttachFeedbackCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AttachFeedbackCommand) setUserID(userID *kernel.UUID) error {
	if userID == nil {
		return nil
	}

	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = *userID
	c.hasUser = true
	return nil
}

func (c *AttachFeedbackCommand) setText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("feedback")
	}

	c.text = text
	return nil
}
