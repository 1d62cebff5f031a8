package commands_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func taxiOrderInAssembly(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	restored, err := order.RestoreOrder(
		id, kernel.NewUUID(), kernel.NewUUID(),
		testLines(t), false, order.TaxiDelivery,
		order.Assembly, nil, nil, time.Now().UTC().Add(-time.Hour), nil, nil,
	)
	require.NoError(t, err)
	return restored
}

func TestMarkAssembledCommandHandler_Handle_CourierDeliveryFansOut(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewMarkAssembledCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	assembled := orderInStatus(t, orderID, order.Assembly)
	courierA := activeCourier(t, kernel.NewUUID())
	courierB := activeCourier(t, kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, orderID).Return(assembled, nil).Once()
	orderRepo.On("Update", mock.Anything, assembled, order.Assembly).Return(nil).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	courierRepo.On("GetAllActive", mock.Anything).
		Return([]*courier.Courier{courierA, courierB}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	notifier.On("Notify", mock.Anything, courierA.ID(), mock.AnythingOfType("string")).Return(nil).Once()
	notifier.On("Notify", mock.Anything, courierB.ID(), mock.AnythingOfType("string")).Return(nil).Once()

	factory := new(MockOrderCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkAssembledCommandHandler(factory, notifier, discardLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ReadyForPickup, assembled.Status())
	assert.NotNil(t, assembled.AssembledAt())
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkAssembledCommandHandler_Handle_TaxiDeliveryAwaitsLink(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewMarkAssembledCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	assembled := taxiOrderInAssembly(t, orderID)

	orderRepo := new(MockOrderRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, orderID).Return(assembled, nil).Once()
	orderRepo.On("Update", mock.Anything, assembled, order.Assembly).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkAssembledCommandHandler(factory, notifier, discardLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.AwaitingTaxiLink, assembled.Status())
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestMarkAssembledCommandHandler_Handle_NotificationFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewMarkAssembledCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	assembled := orderInStatus(t, orderID, order.Assembly)
	courierA := activeCourier(t, kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, orderID).Return(assembled, nil).Once()
	orderRepo.On("Update", mock.Anything, assembled, order.Assembly).Return(nil).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	courierRepo.On("GetAllActive", mock.Anything).Return([]*courier.Courier{courierA}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	notifier.On("Notify", mock.Anything, courierA.ID(), mock.AnythingOfType("string")).
		Return(errors.New("chat unreachable")).Once()

	factory := new(MockOrderCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkAssembledCommandHandler(factory, notifier, discardLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err, "notification failures are logged, not returned")
	assert.Equal(t, order.ReadyForPickup, assembled.Status())
}
