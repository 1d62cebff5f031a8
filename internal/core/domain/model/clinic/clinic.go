package clinic

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a clinic without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned when attempting to create a clinic without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrClinicIsNotConstructed is returned when using an improperly initialized Clinic.
	ErrClinicIsNotConstructed = errors.New("Clinic must be created via NewClinic constructor")
)

// Clinic is a delivery destination. The contact person, when known, receives
// replacement requests and delivery notifications for the clinic's orders.
type Clinic struct {
	id        kernel.UUID
	name      string
	address   string
	location  kernel.GeoPoint
	contactID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewClinic creates a clinic at the given location. contactID may be nil when
// the clinic has no registered contact person.
func NewClinic(id kernel.UUID, name string, address string, location kernel.GeoPoint,
	contactID *kernel.UUID) (*Clinic, error) {
	c := &Clinic{guard: guard.NewConstructorGuard()}

	err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setAddress(address),
		c.setLocation(location),
		c.setContactID(contactID),
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreClinic recreates a clinic from a persisted state.
func RestoreClinic(id kernel.UUID, name string, address string, location kernel.GeoPoint,
	contactID *kernel.UUID) (*Clinic, error) {
	return NewClinic(id, name, address, location, contactID)
}

func (c *Clinic) Validate() error {
	if c == nil {
		return ErrClinicIsNotConstructed
	}
	return c.guard.Validate(ErrClinicIsNotConstructed)
}

func (c *Clinic) IsEqual(other *Clinic) bool {
	return c.id.IsEqual(other.id)
}

func (c *Clinic) ID() kernel.UUID {
	return c.id
}

func (c *Clinic) Name() string {
	return c.name
}

func (c *Clinic) Address() string {
	return c.address
}

func (c *Clinic) Location() kernel.GeoPoint {
	return c.location
}

// ContactID returns the clinic's contact person, or nil when none is registered.
func (c *Clinic) ContactID() *kernel.UUID {
	return c.contactID
}

func (c *Clinic) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Clinic) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Clinic) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}

func (c *Clinic) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *Clinic) setContactID(contactID *kernel.UUID) error {
	if contactID == nil {
		return nil
	}
	if err := contactID.Validate(); err != nil {
		return err
	}
	c.contactID = contactID
	return nil
}
