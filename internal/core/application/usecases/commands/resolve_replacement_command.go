package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrResolveReplacementCommandIsNotConstructed = errors.New(
		"ResolveReplacementCommand must be created via NewResolveReplacementCommand constructor",
	)
	ErrReplacementSKUIsRequired  = errors.New("replacement sku is required")
	ErrReplacementNameIsRequired = errors.New("replacement name is required")
)

// ResolveReplacementCommand represents a manager answering an unavailability
// report with a substitute SKU. Legal only for a line that was flagged and
// not yet resolved.
type ResolveReplacementCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	lineID    kernel.UUID
	managerID kernel.UUID
	sku       string
	name      string

	guard guard.ConstructorGuard
}

// NewResolveReplacementCommand creates a command to record a substitute SKU.
func NewResolveReplacementCommand(
	orderID, lineID, managerID kernel.UUID, sku, name string,
) (ResolveReplacementCommand, error) {
	cmd := ResolveReplacementCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineID(lineID),
		cmd.setManagerID(managerID),
		cmd.setSKU(sku),
		cmd.setName(name),
	); err != nil {
		return ResolveReplacementCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveReplacementCommand) Validate() error {
	return c.guard.Validate(ErrResolveReplacementCommandIsNotConstructed)
}

// OrderID returns the order the line belongs to.
func (c ResolveReplacementCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineID returns the flagged line.
func (c ResolveReplacementCommand) LineID() kernel.UUID {
	return c.lineID
}

// ManagerID returns the manager resolving the replacement.
func (c ResolveReplacementCommand) ManagerID() kernel.UUID {
	return c.managerID
}

// SKU returns the substitute product's SKU.
func (c ResolveReplacementCommand) SKU() string {
	return c.sku
}

// Name returns the substitute product's display name.
func (c ResolveReplacementCommand) Name() string {
	return c.name
}

func (c *ResolveReplacementCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ResolveReplacementCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *ResolveReplacementCommand) setManagerID(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}

	c.managerID = managerID
	return nil
}

func (c *ResolveReplacementCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrReplacementSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *ResolveReplacementCommand) setName(name string) error {
	if name == "" {
		return ErrReplacementNameIsRequired
	}

	c.name = name
	return nil
}
