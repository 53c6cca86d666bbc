package order

// Status represents the lifecycle state of a laundry order.
// It implements a small state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Completed
//	          │
//	          └──> Cancelled
//
// Completed and Cancelled are terminal: no transition ever leaves them.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be picked up and washed.
	Pending

	// Completed indicates the laundry has been washed and delivered back.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was withdrawn before completion.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns Unknown with ok=false for unrecognized input.
func StatusFromString(s string) (Status, bool) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, true
		}
	}
	return Unknown, false
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errInvalidStatusValue(s)
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Pending", "Completed", or "Cancelled" for valid statuses and
// "Unknown" for invalid values. Implements the fmt.Stringer interface and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Pending -> Completed (laundry delivered back)
//
// Any other starting state fails with an InvalidStateTransitionError,
// including Completed -> Completed: terminal states are never re-entered.
func (s Status) Complete() (Status, error) {
	if s != Pending {
		return 0, errTransitionNotAllowed(s, Completed)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled (order withdrawn)
//
// Any other starting state fails with an InvalidStateTransitionError.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errTransitionNotAllowed(s, Cancelled)
	}

	return Cancelled, nil
}
