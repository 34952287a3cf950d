package commands

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// was not created via the NewCreateOrderCommand constructor.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// createdAtLayouts are the accepted timestamp formats for external input.
// RFC 3339 is canonical; the second form covers ISO-8601 values that omit
// a zone offset.
var createdAtLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05"}

// parseCreatedAt parses an optional external timestamp. An empty value
// yields the zero time, which the domain replaces with "now".
func parseCreatedAt(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	for _, layout := range createdAtLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}

	return time.Time{}, errs.NewValueIsInvalidErrorWithCause("created_at",
		fmt.Errorf("%q is not an ISO-8601 timestamp", value))
}

// parseStatus parses an optional external status value. An empty value
// defaults to Pending; otherwise matching is case-insensitive.
func parseStatus(value string) (order.Status, error) {
	if value == "" {
		return order.Pending, nil
	}
	return order.StatusFromString(value)
}

// CreateOrderCommand represents a request to create a new order,
// optionally with its initial items.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	status       order.Status
	createdAt    time.Time
	items        []ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// customerName is required; status defaults to PENDING when empty and is
// matched case-insensitively otherwise; createdAt is optional ISO-8601.
// All item specs must have been built via NewItemSpec.
func NewCreateOrderCommand(
	customerName string,
	statusValue string,
	createdAtValue string,
	items []ItemSpec,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setStatus(statusValue),
		cmd.setCreatedAt(createdAtValue),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the name of the ordering customer.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Status returns the initial order status.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// CreatedAt returns the requested creation timestamp, zero when omitted.
func (c CreateOrderCommand) CreatedAt() time.Time {
	return c.createdAt
}

// Items returns the validated specs of the initial items.
func (c CreateOrderCommand) Items() []ItemSpec {
	return c.items
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setStatus(statusValue string) error {
	status, err := parseStatus(statusValue)
	if err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *CreateOrderCommand) setCreatedAt(createdAtValue string) error {
	createdAt, err := parseCreatedAt(createdAtValue)
	if err != nil {
		return err
	}
	c.createdAt = createdAt
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSpec) error {
	for _, spec := range items {
		if err := spec.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}
