package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// MarkItemUnavailableCommandHandler flags an order line as needing a
// replacement and asks the responsible manager for a substitute.
//
// The manager notification is sent only after the transaction committed and
// is best-effort: a failed send is logged, never rolled back.
type MarkItemUnavailableCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewMarkItemUnavailableCommandHandler creates a handler for unavailability reports.
func NewMarkItemUnavailableCommandHandler(
	uowFactory OrderUoWFactory, notifier ports.Notifier, logger *slog.Logger,
) MarkItemUnavailableCommandHandler {
	return MarkItemUnavailableCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the unavailability report.
// Only orders still in New or Assembly accept line changes.
func (h *MarkItemUnavailableCommandHandler) Handle(ctx context.Context, cmd MarkItemUnavailableCommand) error {
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
	reported, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	loadedStatus := reported.Status()
	if err = reported.MarkLineUnavailable(cmd.LineID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, reported, loadedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	line, err := reported.Line(cmd.LineID())
	if err != nil {
		return err
	}

	message := fmt.Sprintf(
		"Order %s: item %q (sku %s) is unavailable, please pick a replacement",
		reported.ID(), line.Name(), line.SKU(),
	)
	if err = h.notifier.Notify(ctx, reported.ManagerID(), message); err != nil {
		h.logger.Warn("manager notification failed",
			slog.String("orderID", reported.ID().String()),
			slog.Any("error", err))
	}

	return nil
}
