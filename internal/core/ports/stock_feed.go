package ports

import "context"

// StockLevel is one SKU's quantity as reported by the external system of record.
type StockLevel struct {
	SKU string
	Qty int
}

// StockFeed exposes the external ERP's view of stock. The periodic sync job
// reads a snapshot and reconciles it into the local ledger.
type StockFeed interface {
	Snapshot(ctx context.Context) ([]StockLevel, error)
}
