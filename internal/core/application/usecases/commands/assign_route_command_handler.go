package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrCourierIsNotActive is returned when a deactivated courier tries to
// accept a route.
var ErrCourierIsNotActive = errors.New("courier is not active")

// AssignRouteCommandHandler dispatches a batch of planned orders to a courier.
//
// The batch is deliberately not all-or-nothing: between planning a route and
// accepting it, another courier may have taken some of its orders, or an
// order may have been canceled. Such orders are skipped and logged; the rest
// of the batch still dispatches. The caller learns which orders actually went
// out from the returned slice.
type AssignRouteCommandHandler struct {
	uowFactory OrderCourierUoWFactory
	logger     *slog.Logger
}

// NewAssignRouteCommandHandler creates a handler for route acceptance.
func NewAssignRouteCommandHandler(
	uowFactory OrderCourierUoWFactory, logger *slog.Logger,
) AssignRouteCommandHandler {
	return AssignRouteCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the route acceptance and returns the IDs of the orders
// that were actually dispatched to the courier.
func (h *AssignRouteCommandHandler) Handle(
	ctx context.Context, cmd AssignRouteCommand,
) ([]kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accepting, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}
	if !accepting.IsActive() {
		return nil, ErrCourierIsNotActive
	}

	orderRepo := uow.OrderRepository()
	dispatched := make([]kernel.UUID, 0, len(cmd.OrderIDs()))

	for _, orderID := range cmd.OrderIDs() {
		requested, err := orderRepo.Get(ctx, orderID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				h.logSkip(orderID, cmd.CourierID(), err)
				continue
			}
			return nil, err
		}

		loadedStatus := requested.Status()
		if err = requested.Dispatch(cmd.CourierID()); err != nil {
			if errors.Is(err, errs.ErrInvalidTransition) {
				h.logSkip(orderID, cmd.CourierID(), err)
				continue
			}
			return nil, err
		}

		if err = orderRepo.Update(ctx, requested, loadedStatus); err != nil {
			if errors.Is(err, errs.ErrConcurrentModification) {
				h.logSkip(orderID, cmd.CourierID(), err)
				continue
			}
			return nil, err
		}

		dispatched = append(dispatched, orderID)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return dispatched, nil
}

func (h *AssignRouteCommandHandler) logSkip(orderID, courierID kernel.UUID, err error) {
	h.logger.Info("order skipped during route dispatch",
		slog.String("orderID", orderID.String()),
		slog.String("courierID", courierID.String()),
		slog.Any("reason", err))
}
