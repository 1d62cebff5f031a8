package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels an order.
//
// Reserved stock is returned only when the order is canceled from New or
// Assembly: once assembled, the goods have physically left the shelf and the
// next external reconciliation owns the truth.
type CancelOrderCommandHandler struct {
	uowFactory OrderStockUoWFactory
	ledger     *services.StockLedger
}

// NewCancelOrderCommandHandler creates a handler for order cancellations.
func NewCancelOrderCommandHandler(
	uowFactory OrderStockUoWFactory, ledger *services.StockLedger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
	}
}

// Handle processes the cancellation.
// Canceling an already terminal order fails with an invalid transition.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	canceled, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	loadedStatus := canceled.Status()
	if err = canceled.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, canceled, loadedStatus); err != nil {
		return err
	}

	if loadedStatus == order.New || loadedStatus == order.Assembly {
		err = h.ledger.ReleaseBatch(ctx, uow.StockRepository(), canceled.QuantitiesBySKU())
		if err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
