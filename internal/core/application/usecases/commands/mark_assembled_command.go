package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkAssembledCommandIsNotConstructed = errors.New(
	"MarkAssembledCommand must be created via NewMarkAssembledCommand constructor",
)

// MarkAssembledCommand represents a warehouse worker finishing order assembly.
// Courier-delivery orders become available for pickup and every active courier
// is notified; taxi orders wait for the taxi tracking link instead.
type MarkAssembledCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkAssembledCommand creates a command to finish order assembly.
func NewMarkAssembledCommand(orderID, warehouseID kernel.UUID) (MarkAssembledCommand, error) {
	cmd := MarkAssembledCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWarehouseID(warehouseID),
	); err != nil {
		return MarkAssembledCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAssembledCommand) Validate() error {
	return c.guard.Validate(ErrMarkAssembledCommandIsNotConstructed)
}

// OrderID returns the assembled order.
func (c MarkAssembledCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WarehouseID returns the warehouse worker who assembled the order.
func (c MarkAssembledCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c *MarkAssembledCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkAssembledCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}
