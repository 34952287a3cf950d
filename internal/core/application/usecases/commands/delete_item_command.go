package commands

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrDeleteItemCommandIsNotConstructed is returned when a DeleteItemCommand
// was not created via its constructor.
var ErrDeleteItemCommandIsNotConstructed = errors.New(
	"DeleteItemCommand must be created via NewDeleteItemCommand constructor",
)

// DeleteItemCommand represents a request to remove an item from an order.
// The owning order must exist; deleting an item that is already gone is
// treated as success.
type DeleteItemCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	itemID  int64

	guard guard.ConstructorGuard
}

// NewDeleteItemCommand creates a command to remove an item from an order.
// itemID is not validated here: the delete is idempotent, so an id that
// cannot exist simply deletes nothing.
func NewDeleteItemCommand(orderID int64, itemID int64) (DeleteItemCommand, error) {
	cmd := DeleteItemCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DeleteItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order owning the item.
func (c DeleteItemCommand) OrderID() int64 {
	return c.orderID
}

// ItemID returns the identifier of the item to remove.
func (c DeleteItemCommand) ItemID() int64 {
	return c.itemID
}

func (c *DeleteItemCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		// A non-positive id can never exist; treat it as absent.
		return errs.NewObjectNotFoundErrorWithCause("order", orderID,
			fmt.Errorf("%d is not a valid order id", orderID))
	}
	c.orderID = orderID
	return nil
}
