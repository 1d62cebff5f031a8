package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// MarkAssembledCommandHandler completes assembly of an order.
//
// For courier delivery the order moves to ReadyForPickup and a notification
// fans out to all active couriers; for taxi delivery it moves to
// AwaitingTaxiLink and no one is notified yet. The fan-out happens strictly
// after commit and is at-most-once per courier: failed sends are logged and
// not retried.
type MarkAssembledCommandHandler struct {
	uowFactory OrderCourierUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewMarkAssembledCommandHandler creates a handler for assembly completion.
func NewMarkAssembledCommandHandler(
	uowFactory OrderCourierUoWFactory, notifier ports.Notifier, logger *slog.Logger,
) MarkAssembledCommandHandler {
	return MarkAssembledCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the assembly completion.
func (h *MarkAssembledCommandHandler) Handle(ctx context.Context, cmd MarkAssembledCommand) error {
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
	assembled, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	loadedStatus := assembled.Status()
	if err = assembled.MarkAssembled(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, assembled, loadedStatus); err != nil {
		return err
	}

	var couriers []*courier.Courier
	if assembled.Status() == order.ReadyForPickup {
		if couriers, err = uow.CourierRepository().GetAllActive(ctx); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyCouriers(ctx, assembled, couriers)
	return nil
}

func (h *MarkAssembledCommandHandler) notifyCouriers(
	ctx context.Context, assembled *order.Order, couriers []*courier.Courier,
) {
	if len(couriers) == 0 {
		return
	}

	message := fmt.Sprintf("Order %s is ready for pickup", assembled.ID())
	if assembled.IsUrgent() {
		message = fmt.Sprintf("URGENT: order %s is ready for pickup", assembled.ID())
	}

	for _, c := range couriers {
		if err := h.notifier.Notify(ctx, c.ID(), message); err != nil {
			h.logger.Warn("courier notification failed",
				slog.String("orderID", assembled.ID().String()),
				slog.String("courierID", c.ID().String()),
				slog.Any("error", err))
		}
	}
}
