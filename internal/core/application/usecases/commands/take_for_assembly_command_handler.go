package commands

import (
	"context"
)

// TakeForAssemblyCommandHandler moves a claimed order from New to Assembly.
// The status write is compare-and-set, so two workers claiming the same order
// concurrently cannot both win: the loser gets errs.ErrConcurrentModification.
type TakeForAssemblyCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTakeForAssemblyCommandHandler creates a handler for assembly claims.
func NewTakeForAssemblyCommandHandler(uowFactory OrderUoWFactory) TakeForAssemblyCommandHandler {
	return TakeForAssemblyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assembly claim.
func (h *TakeForAssemblyCommandHandler) Handle(ctx context.Context, cmd TakeForAssemblyCommand) error {
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
	claimed, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	loadedStatus := claimed.Status()
	if err = claimed.TakeForAssembly(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, claimed, loadedStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
