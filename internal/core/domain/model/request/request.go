// Package request provides the LaundryRequest aggregate: the raw intake
// record created alongside every priced order. A request carries the
// customer's note, payment preference, and an optional uploaded-image
// reference, but no price. Requests are created Pending and never
// transitioned further in this system.
package request

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a LaundryRequest was not created
	// through the NewLaundryRequest or RestoreLaundryRequest factory methods.
	ErrRequestIsNotConstructed = errors.New(
		"LaundryRequest must be created via NewLaundryRequest or RestoreLaundryRequest constructor")
)

// LaundryRequest is the intake record accompanying an Order.
// It has independent identity and its own (static) Pending status.
type LaundryRequest struct {
	id            kernel.UUID
	userID        kernel.UUID
	itemType      string
	quantity      int
	note          *string
	imageURL      *string
	paymentMethod *string
	createdAt     time.Time

	isConstructed bool
}

// NewLaundryRequest creates an intake record. note, imageURL and
// paymentMethod are optional and may be nil.
func NewLaundryRequest(
	id kernel.UUID,
	userID kernel.UUID,
	itemType string,
	quantity int,
	note *string,
	imageURL *string,
	paymentMethod *string,
	createdAt time.Time,
) (*LaundryRequest, error) {
	r := &LaundryRequest{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setUserID(userID),
		r.setItemType(itemType),
		r.setQuantity(quantity),
		r.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	r.note = note
	r.imageURL = imageURL
	r.paymentMethod = paymentMethod

	return r, nil
}

// RestoreLaundryRequest reconstructs a request from persisted state.
func RestoreLaundryRequest(
	id kernel.UUID,
	userID kernel.UUID,
	itemType string,
	quantity int,
	note *string,
	imageURL *string,
	paymentMethod *string,
	createdAt time.Time,
) (*LaundryRequest, error) {
	return NewLaundryRequest(id, userID, itemType, quantity, note, imageURL, paymentMethod, createdAt)
}

// Validate ensures the request was properly constructed.
func (r *LaundryRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the request's unique identifier.
func (r *LaundryRequest) ID() kernel.UUID {
	return r.id
}

// UserID returns the identifier of the owning user.
func (r *LaundryRequest) UserID() kernel.UUID {
	return r.userID
}

// ItemType returns the laundry item key.
func (r *LaundryRequest) ItemType() string {
	return r.itemType
}

// Quantity returns the number of items.
func (r *LaundryRequest) Quantity() int {
	return r.quantity
}

// Note returns the optional customer note, nil when absent.
func (r *LaundryRequest) Note() *string {
	return r.note
}

// ImageURL returns the optional uploaded-image reference, nil when absent.
func (r *LaundryRequest) ImageURL() *string {
	return r.imageURL
}

// PaymentMethod returns the optional payment preference, nil when absent.
func (r *LaundryRequest) PaymentMethod() *string {
	return r.paymentMethod
}

// Status returns the request status. Requests are created Pending and stay
// Pending; order lifecycle state lives on the companion Order.
func (r *LaundryRequest) Status() string {
	return "Pending"
}

// CreatedAt returns the submission timestamp.
func (r *LaundryRequest) CreatedAt() time.Time {
	return r.createdAt
}

func (r *LaundryRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *LaundryRequest) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	r.userID = userID
	return nil
}

func (r *LaundryRequest) setItemType(itemType string) error {
	if itemType == "" {
		return errs.NewValueIsRequiredError("itemType")
	}
	r.itemType = itemType
	return nil
}

func (r *LaundryRequest) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	r.quantity = quantity
	return nil
}

func (r *LaundryRequest) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	r.createdAt = createdAt
	return nil
}
