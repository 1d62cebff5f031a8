package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, but only if the
	// stored row still carries expectedStatus (compare-and-set). Returns
	// errs.ErrConcurrentModification when another actor moved the order first.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetReadyForPickup retrieves all courier-delivery orders awaiting
	// dispatch. Taxi orders never appear here.
	GetReadyForPickup(ctx context.Context) ([]*order.Order, error)
}
