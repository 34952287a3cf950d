// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and state transitions, and the Item entity owned by it.
//
// The package includes:
//   - Order: the aggregate root managing identity, items, and lifecycle
//   - Item: a line entry (product, price, quantity) owned by one Order
//   - Status: a state machine that enforces valid status transitions
//
// Key business rules:
//   - Orders require a non-empty customer name and a valid status
//   - Status follows the linear workflow
//     PENDING -> CREATED -> IN_PROGRESS -> SHIPPED -> COMPLETED
//   - CANCELLED is reachable from any state and is terminal
//   - Advancing requires at least one item and a non-terminal status
//   - Deleting an order deletes all of its items
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
