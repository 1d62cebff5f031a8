package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// CompleteTaxiDeliveryCommandHandler closes a taxi order with its tracking
// link. The clinic's contact person receives the link when the clinic has
// one registered; otherwise the responsible manager does.
type CompleteTaxiDeliveryCommandHandler struct {
	uowFactory OrderClinicUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCompleteTaxiDeliveryCommandHandler creates a handler for taxi handovers.
func NewCompleteTaxiDeliveryCommandHandler(
	uowFactory OrderClinicUoWFactory, notifier ports.Notifier, logger *slog.Logger,
) CompleteTaxiDeliveryCommandHandler {
	return CompleteTaxiDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the taxi handover.
// Calling it before the order reached AwaitingTaxiLink fails with an invalid
// transition.
func (h *CompleteTaxiDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteTaxiDeliveryCommand) error {
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
	if err = delivered.CompleteTaxiDelivery(cmd.TrackingLink(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, delivered, loadedStatus); err != nil {
		return err
	}

	recipientID := delivered.ManagerID()
	destination, err := uow.ClinicRepository().Get(ctx, delivered.ClinicID())
	if err == nil && destination.ContactID() != nil {
		recipientID = *destination.ContactID()
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyRecipient(ctx, delivered.ID(), recipientID, cmd.TrackingLink())
	return nil
}

func (h *CompleteTaxiDeliveryCommandHandler) notifyRecipient(
	ctx context.Context, orderID, recipientID kernel.UUID, trackingLink string,
) {
	message := fmt.Sprintf("Order %s was sent by taxi, track it here: %s", orderID, trackingLink)
	if err := h.notifier.Notify(ctx, recipientID, message); err != nil {
		h.logger.Warn("taxi delivery notification failed",
			slog.String("orderID", orderID.String()),
			slog.Any("error", err))
	}
}
