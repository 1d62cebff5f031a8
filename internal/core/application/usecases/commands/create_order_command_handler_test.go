package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stockRecord(t *testing.T, sku string, qty int) *stock.Record {
	t.Helper()
	r, err := stock.NewRecord(sku, qty)
	require.NoError(t, err)
	return r
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		validLineInputs(), false, order.CourierDelivery,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StockRepository").Return(stockRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	stockRepo.On("Get", mock.Anything, "SKU-A").Return(stockRecord(t, "SKU-A", 10), nil).Once()
	stockRepo.On("Get", mock.Anything, "SKU-B").Return(stockRecord(t, "SKU-B", 3), nil).Once()
	stockRepo.On("ReserveQty", mock.Anything, "SKU-A", 5).Return(nil).Once()
	stockRepo.On("ReserveQty", mock.Anything, "SKU-B", 3).Return(nil).Once()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewStockLedger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	stockRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		validLineInputs(), false, order.CourierDelivery,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StockRepository").Return(stockRepo).Once()
	// SKU-A validates first (sorted order) and comes up short
	stockRepo.On("Get", mock.Anything, "SKU-A").Return(stockRecord(t, "SKU-A", 4), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewStockLedger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInsufficientStock)

	var insufficientErr *errs.InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, "SKU-A", insufficientErr.SKU)
	assert.Equal(t, 4, insufficientErr.Available)
	assert.Equal(t, 5, insufficientErr.Requested)

	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	stockRepo.AssertNotCalled(t, "ReserveQty", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderStockUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, services.NewStockLedger())

	err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
