// Package order provides domain entities and business logic for laundry order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, pricing, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have valid identifiers, a positive quantity, and a pickup point
//   - Total price is fixed at creation (unit price x quantity) and never recomputed
//   - Order status follows a defined workflow: Pending -> Completed or Cancelled
//   - Completed and Cancelled are terminal; transitions from them always fail
//   - Feedback may be attached in any status and overwrites prior feedback
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
