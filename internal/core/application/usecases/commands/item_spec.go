package commands

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrItemSpecIsNotConstructed is returned when an ItemSpec was not created
// via the NewItemSpec constructor.
var ErrItemSpecIsNotConstructed = errors.New("ItemSpec must be created via NewItemSpec constructor")

// defaultQuantity is used when the quantity field is omitted from the input.
const defaultQuantity = 1

// ItemSpec is the validated description of an item carried by order and item
// commands. price and quantity arrive as pointers so that "absent" can be
// distinguished from a legitimate zero.
type ItemSpec struct {
	name     string
	price    float64
	quantity int

	guard guard.ConstructorGuard
}

// NewItemSpec validates the external item fields and creates an ItemSpec.
// name and price are required; quantity defaults to 1 when absent.
// Negative price or quantity values are rejected.
func NewItemSpec(name string, price *float64, quantity *int) (ItemSpec, error) {
	spec := ItemSpec{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		spec.setName(name),
		spec.setPrice(price),
		spec.setQuantity(quantity),
	); err != nil {
		return ItemSpec{}, err
	}

	return spec, nil
}

// Validate ensures the spec was created through the constructor.
func (s ItemSpec) Validate() error {
	return s.guard.Validate(ErrItemSpecIsNotConstructed)
}

// Name returns the product name.
func (s ItemSpec) Name() string {
	return s.name
}

// Price returns the price for the quantity of the item.
func (s ItemSpec) Price() float64 {
	return s.price
}

// Quantity returns the ordered quantity.
func (s ItemSpec) Quantity() int {
	return s.quantity
}

func (s *ItemSpec) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *ItemSpec) setPrice(price *float64) error {
	if price == nil {
		return errs.NewValueIsRequiredError("price")
	}
	if *price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not a non-negative number", *price))
	}
	s.price = *price
	return nil
}

func (s *ItemSpec) setQuantity(quantity *int) error {
	if quantity == nil {
		s.quantity = defaultQuantity
		return nil
	}
	if *quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not a non-negative integer", *quantity))
	}
	s.quantity = *quantity
	return nil
}
