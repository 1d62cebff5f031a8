package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkItemUnavailableCommandIsNotConstructed = errors.New(
	"MarkItemUnavailableCommand must be created via NewMarkItemUnavailableCommand constructor",
)

// MarkItemUnavailableCommand represents a warehouse worker reporting that a
// line item cannot be picked. The responsible manager is asked for a
// substitute; order status is not affected.
type MarkItemUnavailableCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	lineID      kernel.UUID
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkItemUnavailableCommand creates a command to flag a line for replacement.
func NewMarkItemUnavailableCommand(
	orderID, lineID, warehouseID kernel.UUID,
) (MarkItemUnavailableCommand, error) {
	cmd := MarkItemUnavailableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineID(lineID),
		cmd.setWarehouseID(warehouseID),
	); err != nil {
		return MarkItemUnavailableCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkItemUnavailableCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemUnavailableCommandIsNotConstructed)
}

// OrderID returns the order the line belongs to.
func (c MarkItemUnavailableCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineID returns the line that cannot be picked.
func (c MarkItemUnavailableCommand) LineID() kernel.UUID {
	return c.lineID
}

// WarehouseID returns the reporting warehouse worker.
func (c MarkItemUnavailableCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c *MarkItemUnavailableCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkItemUnavailableCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *MarkItemUnavailableCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}
