package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for the courier roster.
type CourierRepository interface {
	// Add persists a new courier to storage.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllActive retrieves all couriers currently on shift. Used for the
	// ready-for-pickup notification fan-out.
	GetAllActive(ctx context.Context) ([]*courier.Courier, error)
}
