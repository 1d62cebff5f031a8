package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCompleteTaxiDeliveryCommandIsNotConstructed = errors.New(
		"CompleteTaxiDeliveryCommand must be created via NewCompleteTaxiDeliveryCommand constructor",
	)
	ErrTrackingLinkIsRequired = errors.New("tracking link is required")
)

// CompleteTaxiDeliveryCommand represents handing an assembled taxi order over
// to the taxi service. Recording the tracking link closes the order.
type CompleteTaxiDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	trackingLink string

	guard guard.ConstructorGuard
}

// NewCompleteTaxiDeliveryCommand creates a command to close a taxi order.
func NewCompleteTaxiDeliveryCommand(
	orderID kernel.UUID, trackingLink string,
) (CompleteTaxiDeliveryCommand, error) {
	cmd := CompleteTaxiDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTrackingLink(trackingLink),
	); err != nil {
		return CompleteTaxiDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteTaxiDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTaxiDeliveryCommandIsNotConstructed)
}

// OrderID returns the taxi order being closed.
func (c CompleteTaxiDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TrackingLink returns the taxi service's tracking URL.
func (c CompleteTaxiDeliveryCommand) TrackingLink() string {
	return c.trackingLink
}

func (c *CompleteTaxiDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteTaxiDeliveryCommand) setTrackingLink(trackingLink string) error {
	if trackingLink == "" {
		return ErrTrackingLinkIsRequired
	}

	c.trackingLink = trackingLink
	return nil
}
