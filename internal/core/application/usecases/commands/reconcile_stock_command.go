package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrReconcileStockCommandIsNotConstructed = errors.New(
		"ReconcileStockCommand must be created via NewReconcileStockCommand constructor",
	)
	ErrSKUIsRequired  = errors.New("sku is required")
	ErrQtyIsInvalid   = errors.New("qty must not be negative")
)

// ReconcileStockCommand represents the external system of record pushing an
// authoritative quantity for one SKU. The local value is overwritten, last
// writer wins.
type ReconcileStockCommand struct { //nolint:recvcheck //using for validation
	sku string
	qty int

	guard guard.ConstructorGuard
}

// NewReconcileStockCommand creates a command to overwrite a SKU's quantity.
func NewReconcileStockCommand(sku string, qty int) (ReconcileStockCommand, error) {
	cmd := ReconcileStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSKU(sku),
		cmd.setQty(qty),
	); err != nil {
		return ReconcileStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileStockCommand) Validate() error {
	return c.guard.Validate(ErrReconcileStockCommandIsNotConstructed)
}

// SKU returns the reconciled product's SKU.
func (c ReconcileStockCommand) SKU() string {
	return c.sku
}

// Qty returns the authoritative available quantity.
func (c ReconcileStockCommand) Qty() int {
	return c.qty
}

func (c *ReconcileStockCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *ReconcileStockCommand) setQty(qty int) error {
	if qty < 0 {
		return ErrQtyIsInvalid
	}

	c.qty = qty
	return nil
}
