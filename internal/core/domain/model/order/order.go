package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLinesAreRequired is returned when attempting to create an order
	// without a single line.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("lines")

	// ErrCourierMismatch is returned when a courier tries to complete a
	// delivery that is assigned to a different courier.
	ErrCourierMismatch = errors.New("order is assigned to a different courier")
)

// Order is the aggregate root of the fulfillment workflow. It owns the order
// lines and the lifecycle status, and is the only place where either is
// mutated.
//
// Order follows these invariants:
//   - Must have valid manager, clinic, and order identifiers
//   - Must have at least one line, each with positive quantity
//   - Status moves only forward along the lifecycle DAG (see Status)
//   - deliveredAt is set iff status == Delivered
//   - assembledAt is set iff status has passed Assembly
//   - taxiTrackingLink is set only for taxi deliveries
//
// Orders are never physically deleted; terminal states are retained for
// audit.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// managerID is the creating manager; never changes
	managerID kernel.UUID

	// clinicID is the delivery destination
	clinicID kernel.UUID

	// courierID is the assigned courier (nil until dispatch)
	courierID *kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// isUrgent marks orders that should be surfaced first to actors
	isUrgent bool

	// deliveryType selects the courier or taxi sub-path after assembly
	deliveryType DeliveryType

	// taxiTrackingLink is the external taxi tracking URL (taxi only)
	taxiTrackingLink *string

	createdAt   time.Time
	assembledAt *time.Time
	deliveredAt *time.Time

	// lines are the order positions; quantity is immutable after creation
	lines []*Line

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order in New status with the given lines.
// All identifiers must be valid, the delivery type defined, and lines
// non-empty with positive quantities. Stock reservation is the caller's
// concern; the aggregate assumes its lines are already backed by reserved
// units.
func NewOrder(
	id, managerID, clinicID kernel.UUID,
	lines []*Line,
	isUrgent bool,
	deliveryType DeliveryType,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        New,
		isConstructed: true,
		createdAt:     createdAt,
		isUrgent:      isUrgent,
	}

	if err := errors.Join(
		o.setID(id),
		o.setManagerID(managerID),
		o.setClinicID(clinicID),
		o.setDeliveryType(deliveryType),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage.
// Unlike NewOrder it accepts the persisted status, courier assignment,
// tracking link, and timestamps, and re-checks their mutual consistency.
func RestoreOrder(
	id, managerID, clinicID kernel.UUID,
	lines []*Line,
	isUrgent bool,
	deliveryType DeliveryType,
	status Status,
	courierID *kernel.UUID,
	taxiTrackingLink *string,
	createdAt time.Time,
	assembledAt, deliveredAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, managerID, clinicID, lines, isUrgent, deliveryType, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
	}
	if (deliveredAt != nil) != (status == Delivered) {
		return nil, errs.NewValueIsInvalidError("deliveredAt must be set exactly for Delivered status")
	}
	// Canceled is skipped: cancellation happens on either side of assembly.
	switch status {
	case New, Assembly:
		if assembledAt != nil {
			return nil, errs.NewValueIsInvalidError("assembledAt must be empty before assembly completes")
		}
	case ReadyForPickup, AwaitingTaxiLink, Delivering, Delivered:
		if assembledAt == nil {
			return nil, errs.NewValueIsInvalidError("assembledAt must be set once assembly completes")
		}
	}

	o.status = status
	o.courierID = courierID
	o.taxiTrackingLink = taxiTrackingLink
	o.assembledAt = assembledAt
	o.deliveredAt = deliveredAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ManagerID returns the creating manager's identifier.
func (o *Order) ManagerID() kernel.UUID {
	return o.managerID
}

// ClinicID returns the delivery destination identifier.
func (o *Order) ClinicID() kernel.UUID {
	return o.clinicID
}

// CourierID returns the assigned courier's ID, or nil before dispatch.
func (o *Order) CourierID() *kernel.UUID {
	return o.courierID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// IsUrgent reports whether the order was flagged urgent at creation.
func (o *Order) IsUrgent() bool {
	return o.isUrgent
}

// DeliveryType returns the courier/taxi delivery kind.
func (o *Order) DeliveryType() DeliveryType {
	return o.deliveryType
}

// TaxiTrackingLink returns the taxi tracking URL, or nil.
func (o *Order) TaxiTrackingLink() *string {
	return o.taxiTrackingLink
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssembledAt returns the assembly completion timestamp, or nil.
func (o *Order) AssembledAt() *time.Time {
	return o.assembledAt
}

// DeliveredAt returns the delivery timestamp, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Lines returns the order positions.
func (o *Order) Lines() []*Line {
	return o.lines
}

// Line finds a line by its identifier.
func (o *Order) Line(lineID kernel.UUID) (*Line, error) {
	for _, l := range o.lines {
		if l.ID().IsEqual(lineID) {
			return l, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("lineID", lineID.String())
}

// QuantitiesBySKU sums the requested quantities per SKU across all lines.
// Used to reserve stock at creation and to release it on early cancel.
func (o *Order) QuantitiesBySKU() map[string]int {
	out := make(map[string]int, len(o.lines))
	for _, l := range o.lines {
		out[l.SKU()] += l.Quantity()
	}
	return out
}

// TakeForAssembly moves the order from New to Assembly.
// A repeated call returns an invalid transition error with no side effect.
func (o *Order) TakeForAssembly() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TakeForAssembly()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkLineUnavailable flags a line for replacement.
// Legal only while the order is still being put together (New or Assembly);
// the order status itself does not change.
func (o *Order) MarkLineUnavailable(lineID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.status.AllowsLineChanges() {
		return errs.NewInvalidTransitionError(o.status.String(), "MarkItemUnavailable")
	}

	line, err := o.Line(lineID)
	if err != nil {
		return err
	}
	return line.MarkUnavailable()
}

// ResolveReplacement records a substitute SKU for a flagged line.
// Legal only if the line needs replacement and none was recorded yet.
func (o *Order) ResolveReplacement(lineID kernel.UUID, sku, name string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	line, err := o.Line(lineID)
	if err != nil {
		return err
	}
	return line.ResolveReplacement(sku, name)
}

// MarkAssembled completes assembly at the given time.
// Courier deliveries become ReadyForPickup; taxi deliveries move to the
// AwaitingTaxiLink sub-state. Either way assembledAt is recorded.
func (o *Order) MarkAssembled(now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.MarkAssembled(o.deliveryType)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assembledAt = &now
	return nil
}

// CompleteTaxiDelivery attaches the taxi tracking link and closes the order.
// Legal only from the AwaitingTaxiLink sub-state.
func (o *Order) CompleteTaxiDelivery(trackingLink string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if trackingLink == "" {
		return errs.NewValueIsRequiredError("trackingLink")
	}

	newStatus, err := o.status.CompleteTaxi()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.taxiTrackingLink = &trackingLink
	o.deliveredAt = &now
	return nil
}

// Dispatch assigns the order to a courier and moves it to Delivering.
// Legal only for courier-delivery orders in ReadyForPickup.
func (o *Order) Dispatch(courierID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.deliveryType != CourierDelivery {
		return errs.NewInvalidTransitionError(o.status.String(), "Dispatch")
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// CompleteDelivery closes a dispatched order at the given time.
// The acting courier must match the assigned one (an unset assignment is
// tolerated). Repeated calls are rejected as invalid transitions.
func (o *Order) CompleteDelivery(courierID kernel.UUID, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil && !o.courierID.IsEqual(courierID) {
		return ErrCourierMismatch
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// Cancel moves the order to the terminal Canceled status.
// Legal from any non-terminal status. Whether reserved stock is released is
// decided by the caller based on the status the order was canceled from.
func (o *Order) Cancel() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setManagerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("managerID", err)
	}
	o.managerID = id
	return nil
}

func (o *Order) setClinicID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clinicID", err)
	}
	o.clinicID = id
	return nil
}

func (o *Order) setDeliveryType(t DeliveryType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.deliveryType = t
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	o.lines = lines
	return nil
}
