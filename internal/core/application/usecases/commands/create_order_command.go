package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
	ErrLineSKUIsRequired     = errors.New("line sku is required")
	ErrLineNameIsRequired    = errors.New("line name is required")
	ErrLineQuantityIsInvalid = errors.New("line quantity must be greater than 0")
)

// LineInput is one requested product position of a new order.
type LineInput struct {
	SKU      string
	Name     string
	Quantity int
}

// CreateOrderCommand represents a request to register a new order for a clinic.
// Stock for every line is reserved atomically with the order itself: if any
// line cannot be covered, the whole order is refused.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), managerID, clinicID,
//	    []LineInput{{SKU: "IMPL-401", Name: "Implant 4.0x10", Quantity: 2}},
//	    false, order.CourierDelivery,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, ledger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	managerID    kernel.UUID
	clinicID     kernel.UUID
	lines        []LineInput
	isUrgent     bool
	deliveryType order.DeliveryType

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates all identifiers, the delivery type, and every line.
func NewCreateOrderCommand(
	orderID, managerID, clinicID kernel.UUID,
	lines []LineInput,
	isUrgent bool,
	deliveryType order.DeliveryType,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		isUrgent: isUrgent,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setManagerID(managerID),
		cmd.setClinicID(clinicID),
		cmd.setLines(lines),
		cmd.setDeliveryType(deliveryType),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ManagerID returns the manager responsible for the order.
func (c CreateOrderCommand) ManagerID() kernel.UUID {
	return c.managerID
}

// ClinicID returns the destination clinic.
func (c CreateOrderCommand) ClinicID() kernel.UUID {
	return c.clinicID
}

// Lines returns the requested product positions.
func (c CreateOrderCommand) Lines() []LineInput {
	return c.lines
}

// IsUrgent reports whether the order was flagged urgent by the manager.
func (c CreateOrderCommand) IsUrgent() bool {
	return c.isUrgent
}

// DeliveryType returns how the order will reach the clinic.
func (c CreateOrderCommand) DeliveryType() order.DeliveryType {
	return c.deliveryType
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setManagerID(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}

	c.managerID = managerID
	return nil
}

func (c *CreateOrderCommand) setClinicID(clinicID kernel.UUID) error {
	if err := clinicID.Validate(); err != nil {
		return err
	}

	c.clinicID = clinicID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []LineInput) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if line.SKU == "" {
			return ErrLineSKUIsRequired
		}
		if line.Name == "" {
			return ErrLineNameIsRequired
		}
		if line.Quantity <= 0 {
			return ErrLineQuantityIsInvalid
		}
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setDeliveryType(deliveryType order.DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}

	c.deliveryType = deliveryType
	return nil
}
