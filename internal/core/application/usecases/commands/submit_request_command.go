package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrSubmitRequestCommandIsNotConstructed = errors.New(
	"SubmitRequestCommand must be created via NewSubmitRequestCommand constructor",
)

// SubmitRequestCommand represents a customer's laundry intake submission.
// It carries the identifiers for both records the intake creates: the
// request entry and its order.
type SubmitRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	orderID   kernel.UUID
	userID    kernel.UUID

	itemType       string
	quantity       int
	hostelName     string
	roomNumber     string
	pickupTimeSlot string

	note          *string
	imageURL      *string
	paymentMethod *string

	guard guard.ConstructorGuard
}

// NewSubmitRequestCommand creates a command to submit a laundry request.
// note, imageURL and paymentMethod are optional and may be nil.
func NewSubmitRequestCommand(
	requestID kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	itemType string,
	quantity int,
	hostelName string,
	roomNumber string,
	pickupTimeSlot string,
	note *string,
	imageURL *string,
	paymentMethod *string,
) (SubmitRequestCommand, error) {
	cmd := SubmitRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setItemType(itemType),
		cmd.setQuantity(quantity),
		cmd.setPickupPoint(hostelName, roomNumber, pickupTimeSlot),
	); err != nil {
		return SubmitRequestCommand{}, err
	}

	cmd.note = note
	cmd.imageURL = imageURL
	cmd.paymentMethod = paymentMethod

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRequestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRequestCommandIsNotConstructed)
}

// RequestID returns the identifier for the intake record.
func (c SubmitRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// OrderID returns the identifier for the order the intake creates.
func (c SubmitRequestCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the submitting customer's identifier.
func (c SubmitRequestCommand) UserID() kernel.UUID {
	return c.userID
}

// ItemType returns the garment type being submitted.
func (c SubmitRequestCommand) ItemType() string {
	return c.itemType
}

// Quantity returns the number of items.
func (c SubmitRequestCommand) Quantity() int {
	return c.quantity
}

// HostelName returns the pickup hostel.
func (c SubmitRequestCommand) HostelName() string {
	return c.hostelName
}

// RoomNumber returns the pickup room.
func (c SubmitRequestCommand) RoomNumber() string {
	return c.roomNumber
}

// PickupTimeSlot returns the requested pickup window.
func (c SubmitRequestCommand) PickupTimeSlot() string {
	return c.pickupTimeSlot
}

// Note returns the optional customer note.
func (c SubmitRequestCommand) Note() *string {
	return c.note
}

// ImageURL returns the optional reference to an uploaded photo.
func (c SubmitRequestCommand) ImageURL() *string {
	return c.imageURL
}

// PaymentMethod returns the optional payment method label.
func (c SubmitRequestCommand) PaymentMethod() *string {
	return c.paymentMethod
}

func (c *SubmitRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *SubmitRequestCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitRequestCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *SubmitRequestCommand) setItemType(itemType string) error {
	if itemType == "" {
		return errs.NewValueIsRequiredError("itemType")
	}

	c.itemType = itemType
	return nil
}

func (c *SubmitRequestCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *SubmitRequestCommand) setPickupPoint(hostelName, roomNumber, pickupTimeSlot string) error {
	if hostelName == "" {
		return errs.NewValueIsRequiredError("hostelName")
	}
	if roomNumber == "" {
		return errs.NewValueIsRequiredError("roomNumber")
	}
	if pickupTimeSlot == "" {
		return errs.NewValueIsRequiredError("pickupTimeSlot")
	}

	c.hostelName = hostelName
	c.roomNumber = roomNumber
	c.pickupTimeSlot = pickupTimeSlot
	return nil
}
