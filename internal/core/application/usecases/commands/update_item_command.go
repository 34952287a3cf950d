package commands

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrUpdateItemCommandIsNotConstructed is returned when an UpdateItemCommand
// was not created via its constructor.
var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand represents a request to replace the mutable fields of an
// item belonging to an order.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	itemID  int64
	spec    ItemSpec

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to update an item of an order.
func NewUpdateItemCommand(orderID int64, itemID int64, spec ItemSpec) (UpdateItemCommand, error) {
	cmd := UpdateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setSpec(spec),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order owning the item.
func (c UpdateItemCommand) OrderID() int64 {
	return c.orderID
}

// ItemID returns the identifier of the item to update.
func (c UpdateItemCommand) ItemID() int64 {
	return c.itemID
}

// Spec returns the validated replacement fields for the item.
func (c UpdateItemCommand) Spec() ItemSpec {
	return c.spec
}

func (c *UpdateItemCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		// A non-positive id can never exist; treat it as absent.
		return errs.NewObjectNotFoundErrorWithCause("order", orderID,
			fmt.Errorf("%d is not a valid order id", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateItemCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewObjectNotFoundErrorWithCause("item", itemID,
			fmt.Errorf("%d is not a valid item id", itemID))
	}
	c.itemID = itemID
	return nil
}

func (c *UpdateItemCommand) setSpec(spec ItemSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	c.spec = spec
	return nil
}
