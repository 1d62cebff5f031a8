package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// ReconcileStockCommandHandler overwrites a SKU's local quantity with the
// external system of record's value. Going through the ledger serializes the
// overwrite with in-flight reservations, so it can never land between the
// availability check and the decrement of a competing batch.
type ReconcileStockCommandHandler struct {
	uowFactory StockUoWFactory
	ledger     *services.StockLedger
}

// NewReconcileStockCommandHandler creates a handler for stock reconciliation.
func NewReconcileStockCommandHandler(
	uowFactory StockUoWFactory, ledger *services.StockLedger,
) ReconcileStockCommandHandler {
	return ReconcileStockCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
	}
}

// Handle processes one SKU's reconciliation.
func (h *ReconcileStockCommandHandler) Handle(ctx context.Context, cmd ReconcileStockCommand) error {
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

	if err := h.ledger.Reconcile(ctx, uow.StockRepository(), cmd.SKU(), cmd.Qty()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
