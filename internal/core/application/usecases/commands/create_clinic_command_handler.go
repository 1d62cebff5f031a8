package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/clinic"
)

// CreateClinicCommandHandler registers a new delivery destination.
type CreateClinicCommandHandler struct {
	uowFactory ClinicUoWFactory
}

// NewCreateClinicCommandHandler creates a handler for clinic registration.
func NewCreateClinicCommandHandler(uowFactory ClinicUoWFactory) CreateClinicCommandHandler {
	return CreateClinicCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clinic registration.
func (h *CreateClinicCommandHandler) Handle(ctx context.Context, cmd CreateClinicCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	registered, err := clinic.NewClinic(
		cmd.ClinicID(), cmd.Name(), cmd.Address(), cmd.Location(), cmd.ContactID(),
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

	if err = uow.ClinicRepository().Add(ctx, registered); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
