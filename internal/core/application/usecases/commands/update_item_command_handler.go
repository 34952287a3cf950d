package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// UpdateItemCommandHandler handles replacing the fields of an item that
// belongs to an order.
type UpdateItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateItemCommandHandler creates a handler for updating order items.
func NewUpdateItemCommandHandler(uowFactory OrderUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle updates the item and returns it as persisted.
// Fails with ObjectNotFound when the order does not exist or the item does
// not belong to it.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (*order.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	item := aggregate.ItemByID(cmd.ItemID())
	if item == nil {
		return nil, errs.NewObjectNotFoundError("item", cmd.ItemID())
	}

	spec := cmd.Spec()
	if err = item.Update(spec.Name(), spec.Price(), spec.Quantity()); err != nil {
		return nil, err
	}

	updated, err := repo.Update(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	persisted := updated.ItemByID(cmd.ItemID())
	if persisted == nil {
		return nil, errs.NewObjectNotFoundError("item", cmd.ItemID())
	}

	return persisted, nil
}
