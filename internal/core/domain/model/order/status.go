package order

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	New ──> Assembly ──┬──> ReadyForPickup ──> Delivering ──> Delivered
//	                   └──> AwaitingTaxiLink ──────────────> Delivered
//
// Canceled is reachable from any non-terminal state. Delivered and Canceled
// are terminal. The status only moves forward; no transition moves it back.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status: stock is reserved, the warehouse has not
	// started assembling yet.
	New

	// Assembly indicates a warehouse actor has taken the order for assembly.
	Assembly

	// ReadyForPickup indicates a courier-delivery order is assembled and
	// waiting for a courier to accept a route containing it.
	ReadyForPickup

	// AwaitingTaxiLink indicates a taxi-delivery order is assembled and
	// waiting for the taxi tracking link to be attached.
	AwaitingTaxiLink

	// Delivering indicates a courier accepted a route containing the order.
	Delivering

	// Delivered is a terminal status: the order reached its destination.
	Delivered

	// Canceled is a terminal status reachable from any non-terminal state.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		New:              "New",
		Assembly:         "Assembly",
		ReadyForPickup:   "ReadyForPickup",
		AwaitingTaxiLink: "AwaitingTaxiLink",
		Delivering:       "Delivering",
		Delivered:        "Delivered",
		Canceled:         "Canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:              "New",
		Assembly:         "Assembly",
		ReadyForPickup:   "ReadyForPickup",
		AwaitingTaxiLink: "AwaitingTaxiLink",
		Delivering:       "Delivering",
		Delivered:        "Delivered",
		Canceled:         "Canceled",
	}
}

// Validate checks if the Status value is one of the defined workflow states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errs.NewValueIsOutOfRangeError("status", int(s), int(New), int(Canceled)))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// AllowsLineChanges reports whether order lines may still be flagged for
// replacement: only before the order has been assembled.
func (s Status) AllowsLineChanges() bool {
	return s == New || s == Assembly
}

// TakeForAssembly transitions New -> Assembly.
// A second call on the same order yields an invalid transition error with
// no side effect.
func (s Status) TakeForAssembly() (Status, error) {
	if s != New {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "TakeForAssembly")
	}
	return Assembly, nil
}

// MarkAssembled transitions Assembly -> ReadyForPickup for courier delivery
// or Assembly -> AwaitingTaxiLink for taxi delivery.
func (s Status) MarkAssembled(deliveryType DeliveryType) (Status, error) {
	if s != Assembly {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "MarkAssembled")
	}
	if deliveryType == TaxiDelivery {
		return AwaitingTaxiLink, nil
	}
	return ReadyForPickup, nil
}

// Dispatch transitions ReadyForPickup -> Delivering when a courier accepts
// a route containing the order.
func (s Status) Dispatch() (Status, error) {
	if s != ReadyForPickup {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "Dispatch")
	}
	return Delivering, nil
}

// CompleteTaxi transitions AwaitingTaxiLink -> Delivered once the taxi
// tracking link is attached.
func (s Status) CompleteTaxi() (Status, error) {
	if s != AwaitingTaxiLink {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "CompleteTaxiDelivery")
	}
	return Delivered, nil
}

// Complete transitions Delivering -> Delivered.
// Repeated completion attempts are rejected, not fatal.
func (s Status) Complete() (Status, error) {
	if s != Delivering {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "CompleteDelivery")
	}
	return Delivered, nil
}

// Cancel transitions any non-terminal status to Canceled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "Cancel")
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Canceled, nil
}
