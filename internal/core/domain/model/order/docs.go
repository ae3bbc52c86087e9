// Package order provides domain entities and business logic for food order
// management in the canteen system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root managing order identity, line items, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - LineItem: A value object pairing a menu item reference with a quantity
//   - Event: The real-time notification produced by placement and transitions
//
// Key business rules:
//   - Orders must have a valid identifier, a 4-character public token, an
//     owner, and at least one line item
//   - Status follows a defined workflow: Pending -> Confirmed -> Prepared -> Delivered
//   - Rejection is allowed from Pending or Confirmed, but not after preparation
//   - Delivered, Rejected, and Cancelled are terminal states
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
