package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAssignRouteCommandIsNotConstructed = errors.New(
		"AssignRouteCommand must be created via NewAssignRouteCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// AssignRouteCommand represents a courier accepting a planned route: the
// listed orders are assigned to the courier and dispatched together.
type AssignRouteCommand struct { //nolint:recvcheck //using for validation
	orderIDs  []kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignRouteCommand creates a command to dispatch a batch of orders to a courier.
func NewAssignRouteCommand(orderIDs []kernel.UUID, courierID kernel.UUID) (AssignRouteCommand, error) {
	cmd := AssignRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setCourierID(courierID),
	); err != nil {
		return AssignRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignRouteCommandIsNotConstructed)
}

// OrderIDs returns the orders on the accepted route.
func (c AssignRouteCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// CourierID returns the courier accepting the route.
func (c AssignRouteCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AssignRouteCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}

	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}

func (c *AssignRouteCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
