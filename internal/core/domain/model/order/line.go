package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrLineIsNotConstructed is returned when a Line instance was not created
	// through the NewLine or RestoreLine constructors.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

	// ErrReplacementNotRequested is returned when resolving a replacement on a
	// line the warehouse never flagged as unavailable.
	ErrReplacementNotRequested = errors.New("line is not flagged for replacement")

	// ErrReplacementAlreadyResolved is returned when a replacement was already
	// recorded for the line.
	ErrReplacementAlreadyResolved = errors.New("replacement is already recorded for the line")
)

// Line is a single position of an order: a SKU, its display name, and the
// requested quantity. Quantity is immutable after creation.
//
// A warehouse actor may flag a line as unavailable (needsReplacement); the
// order's manager then records a substitute SKU exactly once. The
// needsReplacement flag is kept set after resolution as a history marker.
type Line struct {
	// id uniquely identifies the line within the system
	id kernel.UUID

	// sku is the stock-keeping unit the line reserves
	sku string

	// name is the display name captured at order creation
	name string

	// quantity is the requested unit count (> 0, immutable)
	quantity int

	// needsReplacement is raised by a warehouse actor when the SKU
	// cannot be assembled
	needsReplacement bool

	// replacementSKU/replacementName record the substitute chosen by the
	// manager; set at most once, only after needsReplacement is raised
	replacementSKU  *string
	replacementName *string

	guard guard.ConstructorGuard
}

// NewLine creates an order line with the given SKU, display name, and
// quantity. Quantity must be positive and SKU non-empty.
func NewLine(id kernel.UUID, sku, name string, quantity int) (*Line, error) {
	line := &Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setSKU(sku),
		line.setName(name),
		line.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a Line from persistent storage, including its
// replacement history.
func RestoreLine(
	id kernel.UUID,
	sku, name string,
	quantity int,
	needsReplacement bool,
	replacementSKU, replacementName *string,
) (*Line, error) {
	line, err := NewLine(id, sku, name, quantity)
	if err != nil {
		return nil, err
	}

	if (replacementSKU != nil || replacementName != nil) && !needsReplacement {
		return nil, errs.NewValueIsInvalidError("replacement fields require needsReplacement")
	}

	line.needsReplacement = needsReplacement
	line.replacementSKU = replacementSKU
	line.replacementName = replacementName
	return line, nil
}

// Validate ensures the Line was created through a constructor.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// SKU returns the stock-keeping unit of the line.
func (l *Line) SKU() string {
	return l.sku
}

// Name returns the display name captured at order creation.
func (l *Line) Name() string {
	return l.name
}

// Quantity returns the requested unit count.
func (l *Line) Quantity() int {
	return l.quantity
}

// NeedsReplacement reports whether a warehouse actor flagged the line as
// unavailable. The flag stays set after a replacement is recorded.
func (l *Line) NeedsReplacement() bool {
	return l.needsReplacement
}

// ReplacementSKU returns the substitute SKU, or nil if none was recorded.
func (l *Line) ReplacementSKU() *string {
	return l.replacementSKU
}

// ReplacementName returns the substitute display name, or nil.
func (l *Line) ReplacementName() *string {
	return l.replacementName
}

// MarkUnavailable raises the needsReplacement flag.
// Raising it again is a no-op, not an error.
func (l *Line) MarkUnavailable() error {
	if err := l.Validate(); err != nil {
		return err
	}

	l.needsReplacement = true
	return nil
}

// ResolveReplacement records the substitute chosen by the manager.
// Legal only after MarkUnavailable and at most once; the needsReplacement
// flag is intentionally left set as a history marker.
func (l *Line) ResolveReplacement(sku, name string) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if !l.needsReplacement {
		return ErrReplacementNotRequested
	}
	if l.replacementSKU != nil {
		return ErrReplacementAlreadyResolved
	}
	if sku == "" {
		return errs.NewValueIsRequiredError("replacement sku")
	}
	if name == "" {
		return errs.NewValueIsRequiredError("replacement name")
	}

	l.replacementSKU = &sku
	l.replacementName = &name
	return nil
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	l.sku = sku
	return nil
}

func (l *Line) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
