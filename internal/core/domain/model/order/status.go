package order

import (
	"fmt"
	"strings"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Created ──> InProgress ──> Shipped ──> Completed
//	   │           │            │             │
//	   └───────────┴────────────┴─────────────┴──────> Cancelled
//
// Completed and Cancelled are terminal: no further transitions are allowed
// out of them via Next. Status is a value object that validates transitions
// and provides the canonical string representations used for persistence
// and JSON interchange.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Created indicates the order has been confirmed.
	Created

	// InProgress indicates the order is being prepared.
	InProgress

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Completed indicates the order has been delivered.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was cancelled.
	// Reachable from any non-terminal state; terminal once entered.
	Cancelled
)

// getStatusStrings returns a map of Status values to their canonical
// uppercase names. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Created:    "CREATED",
		InProgress: "IN_PROGRESS",
		Shipped:    "SHIPPED",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Created:    "CREATED",
		InProgress: "IN_PROGRESS",
		Shipped:    "SHIPPED",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// StatusFromString converts an external string value to a Status.
// Matching is case-insensitive against the canonical names; an unrecognized
// value returns a ValueIsInvalidError.
func StatusFromString(value string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for status, name := range getValidStatusStrings() {
		if name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("invalid status: %s", value),
	)
}

// Validate checks if the Status value is a member of the defined status set.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical uppercase name of the status,
// or "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further advancement.
// Completed and Cancelled are the two terminal states.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Next transitions the status to its successor in the linear sequence.
//
// Valid transitions:
//   - Pending -> Created
//   - Created -> InProgress
//   - InProgress -> Shipped
//   - Shipped -> Completed
//
// Invalid transitions:
//   - Completed, Cancelled -> anything (terminal states)
//   - Unknown -> anything (invalid state)
//
// Returns (0, error) with a PreconditionFailedError when the current status
// is terminal, or a ValueIsInvalidError for an invalid status value.
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"terminal status",
			fmt.Errorf("%s allows no further status transition", s),
		)
	}

	return s + 1, nil
}

// Cancel transitions the status to Cancelled.
//
// Cancellation is permitted from any valid status, including Completed and
// Cancelled themselves. This mirrors the permissive behavior of the cancel
// action; the asymmetry with Next's terminal check is deliberate.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Cancelled, nil
}
