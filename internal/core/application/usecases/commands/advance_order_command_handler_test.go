package commands_test

import (
	"context"
	"testing"

	"jikoni/internal/core/application/usecases/commands"
	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/order"
	"jikoni/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPlacedOrder(t *testing.T) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromUnits(400)
	require.NoError(t, err)
	line, err := order.NewLineItem(kernel.NewUUID(), 1, price, "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{line}, "", "")
	require.NoError(t, err)
	return o
}

func TestAdvanceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	o := newPlacedOrder(t)
	cmd, err := commands.NewAdvanceOrderCommand(o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	mock.InOrder(
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
	)

	h := commands.NewAdvanceOrderCommandHandler(repo)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Preparing, o.Status())
	repo.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_WalksTheWholeChain(t *testing.T) {
	ctx := context.Background()
	o := newPlacedOrder(t)
	cmd, err := commands.NewAdvanceOrderCommand(o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, o.ID()).Return(o, nil).Times(4)
	repo.On("Update", ctx, o).Return(nil).Times(4)

	h := commands.NewAdvanceOrderCommandHandler(repo)
	for i := 0; i < 4; i++ {
		require.NoError(t, h.Handle(ctx, cmd))
	}
	require.Equal(t, order.Paid, o.Status())
	repo.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_AlreadyPaid(t *testing.T) {
	ctx := context.Background()
	o := newPlacedOrder(t)
	require.NoError(t, o.SetStatus(order.Paid))
	cmd, err := commands.NewAdvanceOrderCommand(o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()

	h := commands.NewAdvanceOrderCommandHandler(repo)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderAlreadyPaid)
	require.Equal(t, order.Paid, o.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdvanceOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once()

	h := commands.NewAdvanceOrderCommandHandler(repo)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestAdvanceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	h := commands.NewAdvanceOrderCommandHandler(new(MockOrderRepository))
	err := h.Handle(ctx, commands.AdvanceOrderCommand{})
	require.ErrorIs(t, err, commands.ErrAdvanceOrderCommandIsNotConstructed)
}

func TestSetOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	o := newPlacedOrder(t)
	cmd, err := commands.NewSetOrderStatusCommand(o.ID(), order.Served)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	mock.InOrder(
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
	)

	h := commands.NewSetOrderStatusCommandHandler(repo)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Served, o.Status())
	repo.AssertExpectations(t)
}

func TestSetOrderStatusCommandHandler_Handle_ReopensPaidOrder(t *testing.T) {
	ctx := context.Background()
	o := newPlacedOrder(t)
	require.NoError(t, o.SetStatus(order.Paid))
	cmd, err := commands.NewSetOrderStatusCommand(o.ID(), order.Preparing)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	mock.InOrder(
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
	)

	h := commands.NewSetOrderStatusCommandHandler(repo)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Preparing, o.Status())
}

func TestSetOrderStatusCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewSetOrderStatusCommand(kernel.NewUUID(), order.Status(0))
	require.Error(t, err)
}
