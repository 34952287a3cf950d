package commands

import (
	"context"
	"fmt"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// AddItemCommandHandler handles adding a single item to an existing order.
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddItemCommandHandler creates a handler for adding items to orders.
func NewAddItemCommandHandler(uowFactory OrderUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends the item to the order and returns the item as persisted,
// with its storage-assigned identifier.
// Fails with ObjectNotFound when the order does not exist.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (*order.Item, error) {
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

	existingIDs := make(map[int64]struct{}, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		existingIDs[item.ID()] = struct{}{}
	}

	spec := cmd.Spec()
	item, err := order.NewItem(spec.Name(), spec.Price(), spec.Quantity())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AddItem(item); err != nil {
		return nil, err
	}

	updated, err := repo.Update(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, persisted := range updated.Items() {
		if _, ok := existingIDs[persisted.ID()]; !ok {
			return persisted, nil
		}
	}

	return nil, fmt.Errorf("item was not persisted for order %d: %w",
		cmd.OrderID(), errs.ErrObjectNotFound)
}
