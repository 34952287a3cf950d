package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item represents a line entry (product, price, quantity) belonging to
// exactly one Order once persisted.
//
// Item maintains these invariants:
//   - Name must be non-empty
//   - Price must be non-negative
//   - Quantity must be non-negative
//   - Can only be created through NewItem or RestoreItem
type Item struct {
	// id is the persistence-assigned identifier (0 until persisted)
	id int64

	// orderID is the owning order's id (0 transiently before association)
	orderID int64

	name     string
	price    float64
	quantity int

	isConstructed bool
}

// NewItem creates a new, not yet persisted Item with validation.
// The id and orderID remain zero until persistence assigns them.
func NewItem(name string, price float64, quantity int) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := item.set(name, price, quantity); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a persisted Item from storage.
// The id must be a valid persistence-assigned identifier.
func RestoreItem(id, orderID int64, name string, price float64, quantity int) (*Item, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("item id",
			fmt.Errorf("%d is not a valid persisted id", id))
	}

	item := &Item{
		id:            id,
		orderID:       orderID,
		isConstructed: true,
	}

	if err := item.set(name, price, quantity); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// ID returns the item's persistence-assigned identifier (0 until persisted).
func (i *Item) ID() int64 {
	return i.id
}

// OrderID returns the owning order's identifier (0 until associated).
func (i *Item) OrderID() int64 {
	return i.orderID
}

// Name returns the product name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the price for the quantity of this item.
func (i *Item) Price() float64 {
	return i.price
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// Update replaces the item's mutable fields after validating them.
func (i *Item) Update(name string, price float64, quantity int) error {
	if err := i.Validate(); err != nil {
		return err
	}

	return i.set(name, price, quantity)
}

func (i *Item) set(name string, price float64, quantity int) error {
	return errors.Join(
		i.setName(name),
		i.setPrice(price),
		i.setQuantity(quantity),
	)
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not a non-negative number", price))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not a non-negative integer", quantity))
	}
	i.quantity = quantity
	return nil
}
