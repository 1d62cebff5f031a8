package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetStockQueryHandler reads a SKU's available quantity from the database.
type GetStockQueryHandler struct {
	db *gorm.DB
}

// NewGetStockQueryHandler creates a handler for stock queries.
func NewGetStockQueryHandler(db *gorm.DB) GetStockQueryHandler {
	return GetStockQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ErrObjectNotFound for a SKU the catalog never ingested.
func (h GetStockQueryHandler) Handle(
	ctx context.Context,
	query GetStockQuery,
) (GetStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockQueryResponse{}, err
	}

	var availableQty int
	row := h.db.WithContext(ctx).Raw(`
		SELECT available_qty
		FROM stock_records
		WHERE sku = ?
	`, query.SKU()).Row()

	if err := row.Scan(&availableQty); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetStockQueryResponse{}, errs.NewObjectNotFoundError("sku", query.SKU())
		}
		return GetStockQueryResponse{}, err
	}

	return GetStockQueryResponse{
		SKU:          query.SKU(),
		AvailableQty: availableQty,
	}, nil
}
