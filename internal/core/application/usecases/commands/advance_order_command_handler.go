package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler handles the advance action of the order
// lifecycle. The domain aggregate enforces the preconditions: the order must
// own at least one item and must not be in a terminal status.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for the advance action.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle advances the order to its next status and returns the order as
// persisted. Fails with ObjectNotFound when the order does not exist and
// with PreconditionFailed when the transition is not allowed.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Advance(); err != nil {
		return nil, err
	}

	advanced, err := repo.Update(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return advanced, nil
}
