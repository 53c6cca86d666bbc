package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a customer cancelling a pending order.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID
	hasUser bool

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel a pending order.
// userID is optional: when supplied, only the order's owner may cancel it;
// a nil userID cancels without an ownership check.
func NewCancelOrderCommand(orderID kernel.UUID, userID *kernel.UUID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the calling customer's identifier and whether the caller
// identified itself.
func (c CancelOrderCommand) UserID() (kernel.UUID, bool) {
	return c.userID, c.hasUser
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setUserID(userID *kernel.UUID) error {
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
