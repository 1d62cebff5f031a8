package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Reserves stock for every line and persists the order in one transaction:
// either the order exists with all its units reserved, or nothing changed.
type CreateOrderCommandHandler struct {
	uowFactory OrderStockUoWFactory
	ledger     *services.StockLedger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderStockUoWFactory for transactional persistence and the
// process-wide stock ledger.
func NewCreateOrderCommandHandler(
	uowFactory OrderStockUoWFactory, ledger *services.StockLedger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
	}
}

// Handle processes the order creation command.
// Returns errs.ErrInsufficientStock when any line cannot be covered; no
// partial reservation survives a failed call.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lines := make([]*order.Line, 0, len(cmd.Lines()))
	for _, input := range cmd.Lines() {
		line, err := order.NewLine(kernel.NewUUID(), input.SKU, input.Name, input.Quantity)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.ManagerID(), cmd.ClinicID(),
		lines, cmd.IsUrgent(), cmd.DeliveryType(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = h.ledger.ReserveBatch(ctx, uow.StockRepository(), newOrder.QuantitiesBySKU()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
