package commands

import (
	"context"
)

// DeleteItemCommandHandler handles removal of an item from an order.
// The owning order must exist; the item itself is removed idempotently.
type DeleteItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteItemCommandHandler creates a handler for removing order items.
func NewDeleteItemCommandHandler(uowFactory OrderUoWFactory) DeleteItemCommandHandler {
	return DeleteItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the item from the order. Succeeds even when the item does
// not exist, but fails with ObjectNotFound when the order itself is absent.
func (h *DeleteItemCommandHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	if _, err := repo.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := repo.DeleteItem(ctx, cmd.OrderID(), cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
