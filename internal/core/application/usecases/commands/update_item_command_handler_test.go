package commands_test

import (
	"context"

	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	spec, err := commands.NewItemSpec("Gadget", priceOf(19.99), nil)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateItemCommand(1, 5, spec)
	require.NoError(t, err)

	stored := restoredOrder(t, 1, order.Pending, restoredItem(t, 5, 1, "Widget"))
	persisted := restoredOrder(t, 1, order.Pending, restoredItem(t, 5, 1, "Gadget"))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(1)).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(persisted, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.ID())
	assert.Equal(t, "Gadget", updated.Name())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateItemCommandHandler_Handle_ItemOwnedByAnotherOrder(t *testing.T) {
	ctx := context.Background()
	spec, err := commands.NewItemSpec("Gadget", priceOf(19.99), nil)
	require.NoError(t, err)
	// Item 7 exists but belongs to order 1; the command addresses order 2.
	cmd, err := commands.NewUpdateItemCommand(2, 7, spec)
	require.NoError(t, err)

	stored := restoredOrder(t, 2, order.Pending, restoredItem(t, 3, 2, "Widget"))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(2)).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateItemCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	spec, err := commands.NewItemSpec("Gadget", priceOf(19.99), nil)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateItemCommand(99, 5, spec)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(99)).
			Return(nil, errs.NewObjectNotFoundError("order", int64(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
