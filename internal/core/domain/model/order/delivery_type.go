package order

import (
	"fulfillment/internal/pkg/errs"
)

// DeliveryType determines how an assembled order leaves the warehouse:
// by an in-house courier route or by an external taxi service.
type DeliveryType int

const (
	// DeliveryTypeUnknown represents an invalid or undefined delivery type.
	DeliveryTypeUnknown DeliveryType = iota

	// CourierDelivery routes the order through the in-house courier flow:
	// ReadyForPickup, route acceptance, Delivering, Delivered.
	CourierDelivery

	// TaxiDelivery hands the order to an external taxi: the order waits for
	// a tracking link and is then delivered directly.
	TaxiDelivery
)

// Validate checks if the DeliveryType value is one of the defined kinds.
func (d DeliveryType) Validate() error {
	if d != CourierDelivery && d != TaxiDelivery {
		return errs.NewValueIsInvalidError("deliveryType")
	}
	return nil
}

// String returns the human-readable name of the delivery type.
func (d DeliveryType) String() string {
	switch d {
	case CourierDelivery:
		return "Courier"
	case TaxiDelivery:
		return "Taxi"
	default:
		return "Unknown"
	}
}
