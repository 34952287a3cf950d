package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a customer's purchase record. It is the aggregate root
// that manages the order lifecycle from creation through status advancement
// to completion or cancellation, and owns the collection of Items.
//
// Order maintains these invariants:
//   - customerName must be non-empty
//   - status must be a member of the defined status set
//   - createdAt <= updatedAt at all times
//   - items belong exclusively to this order
//   - can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the persistence-assigned identifier (0 until persisted)
	id int64

	customerName string
	status       Status
	createdAt    time.Time
	updatedAt    time.Time

	// items is the ordered collection owned exclusively by this order
	items []*Item

	isConstructed bool
}

// NewOrder creates a new, not yet persisted Order with validation.
//
// A zero createdAt means "now"; otherwise the provided timestamp is kept
// (it arrives from deserialized input). Both timestamps are normalized to
// UTC and updatedAt starts equal to createdAt.
func NewOrder(customerName string, status Status, createdAt time.Time) (*Order, error) {
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	order := &Order{
		createdAt:     createdAt.UTC(),
		updatedAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerName(customerName),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs a persisted Order from storage.
// The id must be a valid persistence-assigned identifier and the items
// must already carry their own persisted identity.
func RestoreOrder(
	id int64,
	customerName string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	items []*Item,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a valid persisted id", id))
	}

	order := &Order{
		id:            id,
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		items:         items,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerName(customerName),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call this when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the order's persistence-assigned identifier (0 until persisted).
func (o *Order) ID() int64 {
	return o.id
}

// CustomerName returns the name of the customer who placed the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp (UTC, immutable after creation).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation (UTC).
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns the items owned by this order.
func (o *Order) Items() []*Item {
	return o.items
}

// ItemByID returns the owned item with the given id, or nil when this order
// owns no such item. An item persisted under a different order is not found.
func (o *Order) ItemByID(itemID int64) *Item {
	for _, item := range o.items {
		if item.ID() == itemID {
			return item
		}
	}
	return nil
}

// AddItem appends an item to the order's collection and refreshes updatedAt.
// The item's order association is assigned by persistence.
func (o *Order) AddItem(item *Item) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.touch()
	return nil
}

// RemoveItem removes the owned item with the given id from the collection.
// Returns false when this order owns no such item.
func (o *Order) RemoveItem(itemID int64) bool {
	for idx, item := range o.items {
		if item.ID() == itemID {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			o.touch()
			return true
		}
	}
	return false
}

// UpdateDetails replaces the order's mutable fields and refreshes updatedAt.
// The creation timestamp is never touched.
func (o *Order) UpdateDetails(customerName string, status Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := errors.Join(
		o.setCustomerName(customerName),
		o.setStatus(status),
	); err != nil {
		return err
	}

	o.touch()
	return nil
}

// Advance moves the order to the next status in the linear sequence.
//
// Preconditions:
//   - the order must have at least one item, otherwise a
//     PreconditionFailedError("no items") is returned
//   - the current status must not be terminal, otherwise a
//     PreconditionFailedError("terminal status") is returned
//
// On success the status becomes its sequence successor and updatedAt is
// refreshed. The only reachable last advance is Shipped -> Completed; any
// subsequent call fails with the terminal-status precondition.
func (o *Order) Advance() error {
	if err := o.Validate(); err != nil {
		return err
	}

	if len(o.items) == 0 {
		return errs.NewPreconditionFailedErrorWithCause(
			"no items",
			fmt.Errorf("order %d has no items to fulfil", o.id),
		)
	}

	next, err := o.status.Next()
	if err != nil {
		return err
	}

	o.status = next
	o.touch()
	return nil
}

// Cancel sets the status to Cancelled and refreshes updatedAt.
//
// There is no precondition on item presence, and cancelling an already
// cancelled or completed order is allowed. The operation looks idempotent
// but still changes updatedAt.
func (o *Order) Cancel() error {
	if err := o.Validate(); err != nil {
		return err
	}

	cancelled, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = cancelled
	o.touch()
	return nil
}

// touch refreshes updatedAt, keeping the createdAt <= updatedAt invariant.
func (o *Order) touch() {
	now := time.Now().UTC()
	if now.Before(o.createdAt) {
		now = o.createdAt
	}
	o.updatedAt = now
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
