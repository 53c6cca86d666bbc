package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

func errInvalidStatusValue(s Status) error {
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
}

func errTransitionNotAllowed(from, to Status) error {
	return errs.NewInvalidStateTransitionError(from.String(), to.String())
}

// Order represents a priced, trackable laundry job. It is the aggregate root
// that manages the order lifecycle from submission through completion or
// cancellation.
//
// Order follows these invariants:
//   - Must have valid unique identifiers for the order and the owning user
//   - Quantity must be positive (greater than 0)
//   - Total price is computed once at creation (unit price x quantity)
//     and never recomputed, even if pricing changes later
//   - Status transitions follow the Pending -> Completed / Cancelled workflow
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID is the identifier of the owning user
	userID kernel.UUID

	// itemType is the free-form laundry item key used for pricing
	itemType string

	// quantity is the number of items (must be positive)
	quantity int

	// status represents the current state in the order lifecycle
	status Status

	// totalPrice is fixed at creation time and immutable afterwards
	totalPrice float64

	// hostelName, roomNumber and pickupTimeSlot describe the pickup point
	hostelName     string
	roomNumber     string
	pickupTimeSlot string

	// createdAt is the submission timestamp
	createdAt time.Time

	// feedback is optional free text attached after creation (nil when unset)
	feedback *string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. The total price is computed
// here as unitPrice x quantity and never changes afterwards. The order starts
// in Pending status with no feedback.
//
// Parameters:
//   - id: unique identifier for the order
//   - userID: identifier of the owning user
//   - itemType: laundry item key (must not be empty)
//   - quantity: number of items (must be positive)
//   - unitPrice: price per item at creation time (must not be negative)
//   - hostelName, roomNumber, pickupTimeSlot: pickup point (must not be empty)
//   - createdAt: submission timestamp (must not be zero)
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	itemType string,
	quantity int,
	unitPrice float64,
	hostelName string,
	roomNumber string,
	pickupTimeSlot string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItemType(itemType),
		o.setQuantity(quantity),
		o.setPickupPoint(hostelName, roomNumber, pickupTimeSlot),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if unitPrice < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%v is negative", unitPrice))
	}
	o.totalPrice = unitPrice * float64(quantity)

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state without recomputing
// the total price. Used by repository adapters when loading rows from the
// database. All invariants except price derivation are re-validated.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	itemType string,
	quantity int,
	status Status,
	totalPrice float64,
	hostelName string,
	roomNumber string,
	pickupTimeSlot string,
	createdAt time.Time,
	feedback *string,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItemType(itemType),
		o.setQuantity(quantity),
		o.setStatus(status),
		o.setPickupPoint(hostelName, roomNumber, pickupTimeSlot),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if totalPrice < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("%v is negative", totalPrice))
	}
	o.totalPrice = totalPrice
	o.feedback = feedback

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the owning user.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// ItemType returns the laundry item key.
func (o *Order) ItemType() string {
	return o.itemType
}

// Quantity returns the number of items.
func (o *Order) Quantity() int {
	return o.quantity
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the price fixed at creation time.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// HostelName returns the pickup hostel.
func (o *Order) HostelName() string {
	return o.hostelName
}

// RoomNumber returns the pickup room.
func (o *Order) RoomNumber() string {
	return o.roomNumber
}

// PickupTimeSlot returns the agreed pickup slot.
func (o *Order) PickupTimeSlot() string {
	return o.pickupTimeSlot
}

// CreatedAt returns the submission timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Feedback returns the attached feedback text.
// Returns nil if no feedback has been attached.
func (o *Order) Feedback() *string {
	return o.feedback
}

// Complete marks the order as completed.
//
// Business rules:
//   - The order must be in Pending status
//   - Completed is a terminal state with no further transitions
//
// Returns an InvalidStateTransitionError if the order is not Pending;
// the order is left unchanged in that case.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as cancelled.
//
// Business rules:
//   - The order must be in Pending status
//   - Cancelled is a terminal state with no further transitions
//
// Returns an InvalidStateTransitionError if the order is not Pending;
// the order is left unchanged in that case.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AttachFeedback sets the feedback text on the order.
// Feedback may be attached in any status, including terminal ones, and
// overwrites any previously attached text. Empty feedback is rejected.
func (o *Order) AttachFeedback(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("feedback")
	}

	o.feedback = &text
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setUserID validates and sets the owning user's identifier.
// This is a private method used only during construction.
func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setItemType(itemType string) error {
	if itemType == "" {
		return errs.NewValueIsRequiredError("itemType")
	}
	o.itemType = itemType
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPickupPoint(hostelName, roomNumber, pickupTimeSlot string) error {
	if hostelName == "" {
		return errs.NewValueIsRequiredError("hostelName")
	}
	if roomNumber == "" {
		return errs.NewValueIsRequiredError("roomNumber")
	}
	if pickupTimeSlot == "" {
		return errs.NewValueIsRequiredError("pickupTimeSlot")
	}
	o.hostelName = hostelName
	o.roomNumber = roomNumber
	o.pickupTimeSlot = pickupTimeSlot
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
