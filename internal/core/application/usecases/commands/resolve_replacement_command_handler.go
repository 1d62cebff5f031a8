package commands

import (
	"context"
)

// ResolveReplacementCommandHandler records a substitute SKU on a flagged line.
// The replacement marker stays on the line afterwards so the assembled order
// shows which positions were substituted.
type ResolveReplacementCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResolveReplacementCommandHandler creates a handler for replacement resolutions.
func NewResolveReplacementCommandHandler(uowFactory OrderUoWFactory) ResolveReplacementCommandHandler {
	return ResolveReplacementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the replacement resolution.
func (h *ResolveReplacementCommandHandler) Handle(ctx context.Context, cmd ResolveReplacementCommand) error {
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
	resolved, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	loadedStatus := resolved.Status()
	if err = resolved.ResolveReplacement(cmd.LineID(), cmd.SKU(), cmd.Name()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, resolved, loadedStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
