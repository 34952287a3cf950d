package queries

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrGetItemQueryIsNotConstructed is returned when a GetItemQuery was not
// created via its constructor.
var ErrGetItemQueryIsNotConstructed = errors.New(
	"GetItemQuery must be created via NewGetItemQuery constructor",
)

// GetItemQuery retrieves a single item of a specific order. An item is only
// visible through its owning order.
type GetItemQuery struct { //nolint:recvcheck //using for validation
	orderID int64
	itemID  int64

	guard guard.ConstructorGuard
}

// NewGetItemQuery creates a query to retrieve an item of an order.
func NewGetItemQuery(orderID int64, itemID int64) (GetItemQuery, error) {
	query := GetItemQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setItemID(itemID),
	); err != nil {
		return GetItemQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetItemQuery) Validate() error {
	return q.guard.Validate(ErrGetItemQueryIsNotConstructed)
}

// OrderID returns the identifier of the order owning the item.
func (q GetItemQuery) OrderID() int64 {
	return q.orderID
}

// ItemID returns the identifier of the requested item.
func (q GetItemQuery) ItemID() int64 {
	return q.itemID
}

func (q *GetItemQuery) setOrderID(orderID int64) error {
	if orderID <= 0 {
		// A non-positive id can never exist; treat it as absent.
		return errs.NewObjectNotFoundErrorWithCause("order", orderID,
			fmt.Errorf("%d is not a valid order id", orderID))
	}
	q.orderID = orderID
	return nil
}

func (q *GetItemQuery) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewObjectNotFoundErrorWithCause("item", itemID,
			fmt.Errorf("%d is not a valid item id", itemID))
	}
	q.itemID = itemID
	return nil
}
