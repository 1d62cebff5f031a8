// Package stock implements the per-SKU stock record of the inventory ledger.
// A Record holds the authoritative available quantity for one stock-keeping
// unit and enforces its only invariant: the quantity is never negative.
package stock

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when a Record was not created via
// NewRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record is the authoritative stock entry for a single SKU.
//
// Records are created by catalog ingestion, decremented by reservations,
// incremented by releases, and overwritten wholesale by external
// reconciliation. availableQty >= 0 holds at all times; a reservation that
// would break it is rejected, never clamped.
type Record struct {
	// sku is the unique stock-keeping unit key
	sku string

	// availableQty is the unit count not yet promised to any order
	availableQty int

	guard guard.ConstructorGuard
}

// NewRecord creates a stock record for a SKU with a non-negative quantity.
func NewRecord(sku string, availableQty int) (*Record, error) {
	r := &Record{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(r.setSKU(sku), r.setQty(availableQty)); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Record was created through the constructor.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// SKU returns the stock-keeping unit key.
func (r *Record) SKU() string {
	return r.sku
}

// Available returns the quantity not yet reserved.
func (r *Record) Available() int {
	return r.availableQty
}

// Reserve subtracts n units. Fails with InsufficientStock when fewer than n
// units are available; the record is left unchanged on failure.
func (r *Record) Reserve(n int) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", n))
	}
	if r.availableQty < n {
		return errs.NewInsufficientStockError(r.sku, r.availableQty, n)
	}

	r.availableQty -= n
	return nil
}

// Release adds n units back, e.g. when an order is canceled before assembly.
func (r *Record) Release(n int) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", n))
	}

	r.availableQty += n
	return nil
}

// Overwrite replaces the quantity with an externally reconciled value,
// last writer wins.
func (r *Record) Overwrite(qty int) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if qty < 0 {
		return errs.NewValueIsOutOfRangeError("availableQty", qty, 0, "unbounded")
	}

	r.availableQty = qty
	return nil
}

func (r *Record) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	r.sku = sku
	return nil
}

func (r *Record) setQty(qty int) error {
	if qty < 0 {
		return errs.NewValueIsOutOfRangeError("availableQty", qty, 0, "unbounded")
	}
	r.availableQty = qty
	return nil
}
