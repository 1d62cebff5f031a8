package clinicrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/clinic"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClinicRepository implements ClinicRepository using GORM.
type GormClinicRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormClinicRepository creates a new GORM clinic repository.
func NewGormClinicRepository(db *gorm.DB, tracker aggregateTracker) *GormClinicRepository {
	return &GormClinicRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new clinic to the database.
func (r *GormClinicRepository) Add(ctx context.Context, aggregate *clinic.Clinic) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a clinic by ID.
func (r *GormClinicRepository) Get(ctx context.Context, id kernel.UUID) (*clinic.Clinic, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClinicDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("clinic", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
