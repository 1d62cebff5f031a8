package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/clinic"
	"fulfillment/internal/core/domain/model/kernel"
)

// ClinicRepository defines the persistence contract for delivery destinations.
type ClinicRepository interface {
	// Add persists a new clinic to storage.
	Add(ctx context.Context, aggregate *clinic.Clinic) error

	// Get retrieves a clinic by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*clinic.Clinic, error)
}
