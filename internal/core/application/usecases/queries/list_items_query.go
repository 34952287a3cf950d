package queries

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrListItemsQueryIsNotConstructed is returned when a ListItemsQuery was
// not created via its constructor.
var ErrListItemsQueryIsNotConstructed = errors.New(
	"ListItemsQuery must be created via NewListItemsQuery constructor",
)

// ListItemsQuery retrieves all items of a single order.
type ListItemsQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewListItemsQuery creates a query to list the items of an order.
func NewListItemsQuery(orderID int64) (ListItemsQuery, error) {
	query := ListItemsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return ListItemsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListItemsQuery) Validate() error {
	return q.guard.Validate(ErrListItemsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose items are requested.
func (q ListItemsQuery) OrderID() int64 {
	return q.orderID
}

func (q *ListItemsQuery) setOrderID(orderID int64) error {
	if orderID <= 0 {
		// A non-positive id can never exist; treat it as absent.
		return errs.NewObjectNotFoundErrorWithCause("order", orderID,
			fmt.Errorf("%d is not a valid order id", orderID))
	}
	q.orderID = orderID
	return nil
}
