package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_ReleasesStockBeforeAssembly(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	canceled := orderInStatus(t, orderID, order.Assembly)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, orderID).Return(canceled, nil).Once()
	orderRepo.On("Update", mock.Anything, canceled, order.Assembly).Return(nil).Once()
	uow.On("StockRepository").Return(stockRepo).Once()
	stockRepo.On("ReleaseQty", mock.Anything, "SKU-A", 5).Return(nil).Once()
	stockRepo.On("ReleaseQty", mock.Anything, "SKU-B", 3).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, services.NewStockLedger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Canceled, canceled.Status())
	stockRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_KeepsStockAfterAssembly(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	canceled := orderInStatus(t, orderID, order.ReadyForPickup)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, orderID).Return(canceled, nil).Once()
	orderRepo.On("Update", mock.Anything, canceled, order.ReadyForPickup).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, services.NewStockLedger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Canceled, canceled.Status())
	stockRepo.AssertNotCalled(t, "ReleaseQty", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	delivered := orderInStatus(t, orderID, order.Delivered)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, orderID).Return(delivered, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, services.NewStockLedger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Delivered, delivered.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
