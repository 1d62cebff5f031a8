package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for per-SKU stock records.
// All mutations must go through services.StockLedger, which serializes them.
type StockRepository interface {
	// Get retrieves the stock record for a SKU.
	Get(ctx context.Context, sku string) (*stock.Record, error)

	// ReserveQty atomically decrements available quantity by qty, but only if
	// at least qty is available. Returns errs.ErrInsufficientStock otherwise,
	// leaving the record unchanged.
	ReserveQty(ctx context.Context, sku string, qty int) error

	// ReleaseQty increments available quantity by qty.
	ReleaseQty(ctx context.Context, sku string, qty int) error

	// Overwrite replaces the available quantity wholesale (last writer wins).
	// Creates the record when the SKU is not yet known.
	Overwrite(ctx context.Context, sku string, qty int) error
}
