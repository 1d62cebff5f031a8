package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"
)

// CompleteDeliveryCommandHandler closes a dispatched order on courier
// confirmation and tells the responsible manager. A repeated confirmation
// fails with an invalid transition and changes nothing.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCompleteDeliveryCommandHandler creates a handler for drop-off confirmations.
func NewCompleteDeliveryCommandHandler(
	uowFactory OrderUoWFactory, notifier ports.Notifier, logger *slog.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the drop-off confirmation.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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
	delivered, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	loadedStatus := delivered.Status()
	if err = delivered.CompleteDelivery(cmd.CourierID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, delivered, loadedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	message := fmt.Sprintf("Order %s was delivered", delivered.ID())
	if err = h.notifier.Notify(ctx, delivered.ManagerID(), message); err != nil {
		h.logger.Warn("delivery notification failed",
			slog.String("orderID", delivered.ID().String()),
			slog.Any("error", err))
	}

	return nil
}
