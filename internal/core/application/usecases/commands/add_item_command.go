package commands

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrAddItemCommandIsNotConstructed is returned when an AddItemCommand was
// not created via its constructor.
var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to add a single item to an existing
// order.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	spec    ItemSpec

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add an item to an order.
func NewAddItemCommand(orderID int64, spec ItemSpec) (AddItemCommand, error) {
	cmd := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSpec(spec),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c AddItemCommand) OrderID() int64 {
	return c.orderID
}

// Spec returns the validated description of the item to add.
func (c AddItemCommand) Spec() ItemSpec {
	return c.spec
}

func (c *AddItemCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		// A non-positive id can never exist; treat it as absent.
		return errs.NewObjectNotFoundErrorWithCause("order", orderID,
			fmt.Errorf("%d is not a valid order id", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setSpec(spec ItemSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	c.spec = spec
	return nil
}
