package commands_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/clinic"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetReadyForPickup(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) Get(ctx context.Context, sku string) (*stock.Record, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Record), args.Error(1)
}

func (m *MockStockRepository) ReserveQty(ctx context.Context, sku string, qty int) error {
	args := m.Called(ctx, sku, qty)
	return args.Error(0)
}

func (m *MockStockRepository) ReleaseQty(ctx context.Context, sku string, qty int) error {
	args := m.Called(ctx, sku, qty)
	return args.Error(0)
}

func (m *MockStockRepository) Overwrite(ctx context.Context, sku string, qty int) error {
	args := m.Called(ctx, sku, qty)
	return args.Error(0)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAllActive(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockClinicRepository struct{ mock.Mock }

func (m *MockClinicRepository) Add(ctx context.Context, c *clinic.Clinic) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClinicRepository) Get(ctx context.Context, id kernel.UUID) (*clinic.Clinic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic.Clinic), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, recipientID kernel.UUID, message string) error {
	args := m.Called(ctx, recipientID, message)
	return args.Error(0)
}

// MockUoW implements every repository factory plus the transaction manager,
// so one mock serves all the unit-of-work combinations.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) ClinicRepository() ports.ClinicRepository {
	args := m.Called()
	return args.Get(0).(ports.ClinicRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockClinicUoWFactory struct{ mock.Mock }

func (m *MockClinicUoWFactory) Create() commands.ClinicUoW {
	args := m.Called()
	return args.Get(0).(commands.ClinicUoW)
}

type MockOrderStockUoWFactory struct{ mock.Mock }

func (m *MockOrderStockUoWFactory) Create() commands.OrderStockUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderStockUoW)
}

type MockOrderCourierUoWFactory struct{ mock.Mock }

func (m *MockOrderCourierUoWFactory) Create() commands.OrderCourierUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderCourierUoW)
}

type MockOrderClinicUoWFactory struct{ mock.Mock }

func (m *MockOrderClinicUoWFactory) Create() commands.OrderClinicUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderClinicUoW)
}
