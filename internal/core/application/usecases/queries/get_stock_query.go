package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetStockQueryIsNotConstructed = errors.New(
		"GetStockQuery must be created via NewGetStockQuery constructor",
	)
	ErrGetStockSKUIsRequired = errors.New("sku is required")
)

// GetStockQuery retrieves the available quantity for one SKU.
type GetStockQuery struct { //nolint:recvcheck //using for validation
	sku string

	guard guard.ConstructorGuard
}

// NewGetStockQuery creates a query for a SKU's available quantity.
func NewGetStockQuery(sku string) (GetStockQuery, error) {
	if sku == "" {
		return GetStockQuery{}, ErrGetStockSKUIsRequired
	}

	return GetStockQuery{
		sku:   sku,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockQuery) Validate() error {
	return q.guard.Validate(ErrGetStockQueryIsNotConstructed)
}

// SKU returns the queried SKU.
func (q GetStockQuery) SKU() string {
	return q.sku
}

// GetStockQueryResponse is a SKU's current availability.
type GetStockQueryResponse struct {
	SKU          string
	AvailableQty int
}
