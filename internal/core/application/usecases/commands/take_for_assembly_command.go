package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrTakeForAssemblyCommandIsNotConstructed = errors.New(
	"TakeForAssemblyCommand must be created via NewTakeForAssemblyCommand constructor",
)

// TakeForAssemblyCommand represents a warehouse worker claiming a new order
// for assembly. A second claim on the same order fails with an invalid
// transition and has no side effect.
type TakeForAssemblyCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTakeForAssemblyCommand creates a command to claim an order for assembly.
func NewTakeForAssemblyCommand(orderID, warehouseID kernel.UUID) (TakeForAssemblyCommand, error) {
	cmd := TakeForAssemblyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWarehouseID(warehouseID),
	); err != nil {
		return TakeForAssemblyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TakeForAssemblyCommand) Validate() error {
	return c.guard.Validate(ErrTakeForAssemblyCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c TakeForAssemblyCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WarehouseID returns the warehouse worker claiming the order.
func (c TakeForAssemblyCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c *TakeForAssemblyCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TakeForAssemblyCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}
