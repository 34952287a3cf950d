package commands

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrUpdateOrderCommandIsNotConstructed is returned when an UpdateOrderCommand
// was not created via the NewUpdateOrderCommand constructor.
var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to replace an order's fields.
// Items carried by the payload are appended to the order as new items;
// existing items are edited through UpdateItemCommand instead. The creation
// timestamp is immutable and not part of the command.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	customerName string
	status       order.Status
	items        []ItemSpec

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
// The same field rules as for creation apply: customerName is required and
// an empty status defaults to PENDING.
func NewUpdateOrderCommand(
	orderID int64,
	customerName string,
	statusValue string,
	items []ItemSpec,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setStatus(statusValue),
		cmd.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// CustomerName returns the replacement customer name.
func (c UpdateOrderCommand) CustomerName() string {
	return c.customerName
}

// Status returns the replacement status.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

// Items returns the validated specs of items to append.
func (c UpdateOrderCommand) Items() []ItemSpec {
	return c.items
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		// A non-positive id can never exist; treat it as absent.
		return errs.NewObjectNotFoundErrorWithCause("order", orderID,
			fmt.Errorf("%d is not a valid order id", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	c.customerName = customerName
	return nil
}

func (c *UpdateOrderCommand) setStatus(statusValue string) error {
	status, err := parseStatus(statusValue)
	if err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *UpdateOrderCommand) setItems(items []ItemSpec) error {
	for _, spec := range items {
		if err := spec.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}
