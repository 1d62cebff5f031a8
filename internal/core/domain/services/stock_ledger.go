package services

import (
	"context"
	"sort"
	"sync"

	"fulfillment/internal/core/ports"
)

// StockLedger is the single gate for stock mutations. Reservation, release
// and external reconciliation all serialize through one mutex, so a reconcile
// overwrite can never interleave with a half-applied batch reservation.
//
// The ledger itself holds no quantities: callers pass the repository bound to
// their own transaction, which keeps batch reservation atomic end to end.
// ReserveBatch validates every line before decrementing any, and the handler's
// transaction rollback discards partial decrements on a later failure, so no
// observer ever sees a partial reservation of a call that ultimately failed.
type StockLedger struct {
	mu sync.Mutex
}

// NewStockLedger creates a ledger. One instance must guard all stock
// mutations in the process.
func NewStockLedger() *StockLedger {
	return &StockLedger{}
}

// Available reports the quantity currently available for a SKU.
func (l *StockLedger) Available(ctx context.Context, repo ports.StockRepository, sku string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, err := repo.Get(ctx, sku)
	if err != nil {
		return 0, err
	}
	return record.Available(), nil
}

// ReserveBatch reserves every requested quantity or none of them. SKUs are
// processed in sorted order so concurrent batches never deadlock on row
// locks. The first insufficient SKU aborts the whole call with
// errs.ErrInsufficientStock; the caller must then roll back its transaction.
func (l *StockLedger) ReserveBatch(ctx context.Context, repo ports.StockRepository, quantities map[string]int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	skus := sortedSKUs(quantities)

	for _, sku := range skus {
		record, err := repo.Get(ctx, sku)
		if err != nil {
			return err
		}
		if err := record.Reserve(quantities[sku]); err != nil {
			return err
		}
	}

	for _, sku := range skus {
		if err := repo.ReserveQty(ctx, sku, quantities[sku]); err != nil {
			return err
		}
	}
	return nil
}

// ReleaseBatch returns previously reserved quantities to stock, e.g. when an
// order is canceled before assembly.
func (l *StockLedger) ReleaseBatch(ctx context.Context, repo ports.StockRepository, quantities map[string]int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, sku := range sortedSKUs(quantities) {
		if err := repo.ReleaseQty(ctx, sku, quantities[sku]); err != nil {
			return err
		}
	}
	return nil
}

// Reconcile overwrites a SKU's quantity with the external system of record's
// value, last writer wins. Serialized with reservations through the same
// mutex.
func (l *StockLedger) Reconcile(ctx context.Context, repo ports.StockRepository, sku string, qty int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return repo.Overwrite(ctx, sku, qty)
}

func sortedSKUs(quantities map[string]int) []string {
	skus := make([]string, 0, len(quantities))
	for sku := range quantities {
		skus = append(skus, sku)
	}
	sort.Strings(skus)
	return skus
}
