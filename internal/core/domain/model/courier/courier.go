package courier

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier is a roster entry for a delivery courier.
//
// The core does not track courier position: a courier supplies their live
// location with each route-planning request. The roster exists so that
// ready-for-pickup fan-out knows who to notify and so dispatch can attribute
// orders to an acting courier.
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// isActive controls whether the courier receives ready-order fan-out
	isActive bool

	guard guard.ConstructorGuard
}

// NewCourier creates an active courier roster entry.
// The identifier must be valid and the name non-empty.
func NewCourier(id kernel.UUID, name string) (*Courier, error) {
	c := &Courier{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setID(id), c.setName(name)); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier from persistent storage.
func RestoreCourier(id kernel.UUID, name string, isActive bool) (*Courier, error) {
	c, err := NewCourier(id, name)
	if err != nil {
		return nil, err
	}
	c.isActive = isActive
	return c, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's human-readable name.
func (c *Courier) Name() string {
	return c.name
}

// IsActive reports whether the courier participates in ready-order fan-out.
func (c *Courier) IsActive() bool {
	return c.isActive
}

// Activate includes the courier in fan-out again.
func (c *Courier) Activate() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.isActive = true
	return nil
}

// Deactivate excludes the courier from fan-out, e.g. outside working hours.
func (c *Courier) Deactivate() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.isActive = false
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
