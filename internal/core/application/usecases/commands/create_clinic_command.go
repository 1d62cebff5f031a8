package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateClinicCommandIsNotConstructed = errors.New(
		"CreateClinicCommand must be created via NewCreateClinicCommand constructor",
	)
	ErrClinicNameIsRequired    = errors.New("clinic name is required")
	ErrClinicAddressIsRequired = errors.New("clinic address is required")
)

// CreateClinicCommand represents registering a new delivery destination.
type CreateClinicCommand struct { //nolint:recvcheck //using for validation
	clinicID  kernel.UUID
	name      string
	address   string
	location  kernel.GeoPoint
	contactID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateClinicCommand creates a command to register a clinic.
// contactID may be nil when the clinic has no contact person yet.
func NewCreateClinicCommand(
	clinicID kernel.UUID, name, address string, location kernel.GeoPoint, contactID *kernel.UUID,
) (CreateClinicCommand, error) {
	cmd := CreateClinicCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClinicID(clinicID),
		cmd.setName(name),
		cmd.setAddress(address),
		cmd.setLocation(location),
		cmd.setContactID(contactID),
	); err != nil {
		return CreateClinicCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClinicCommand) Validate() error {
	return c.guard.Validate(ErrCreateClinicCommandIsNotConstructed)
}

// ClinicID returns the new clinic's identifier.
func (c CreateClinicCommand) ClinicID() kernel.UUID {
	return c.clinicID
}

// Name returns the clinic's display name.
func (c CreateClinicCommand) Name() string {
	return c.name
}

// Address returns the clinic's street address.
func (c CreateClinicCommand) Address() string {
	return c.address
}

// Location returns the clinic's coordinates.
func (c CreateClinicCommand) Location() kernel.GeoPoint {
	return c.location
}

// ContactID returns the clinic's contact person, or nil.
func (c CreateClinicCommand) ContactID() *kernel.UUID {
	return c.contactID
}

func (c *CreateClinicCommand) setClinicID(clinicID kernel.UUID) error {
	if err := clinicID.Validate(); err != nil {
		return err
	}

	c.clinicID = clinicID
	return nil
}

func (c *CreateClinicCommand) setName(name string) error {
	if name == "" {
		return ErrClinicNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateClinicCommand) setAddress(address string) error {
	if address == "" {
		return ErrClinicAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateClinicCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *CreateClinicCommand) setContactID(contactID *kernel.UUID) error {
	if contactID == nil {
		return nil
	}
	if err := contactID.Validate(); err != nil {
		return err
	}

	c.contactID = contactID
	return nil
}
