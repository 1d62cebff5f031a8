package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database along with its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order using a compare-and-swap on the status column.
// The write only lands if the stored status still equals expectedStatus, the
// status the caller loaded the aggregate in. A zero-row result means another
// transaction moved the order first and yields a concurrent modification error.
//
// Example:
//
//	claimed, err := repo.Get(ctx, orderID)
//	if err != nil {
//	    return err
//	}
//
//	loadedStatus := claimed.Status()
//	if err := claimed.TakeForAssembly(); err != nil {
//	    return err
//	}
//
//	if err := repo.Update(ctx, claimed, loadedStatus); err != nil {
//	    return err // errs.ErrConcurrentModification if someone got there first
//	}
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Map-based updates so false and NULL values are written as well.
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedStatus)).
		Updates(map[string]any{
			"status":             dto.Status,
			"courier_id":         dto.CourierID,
			"taxi_tracking_link": dto.TaxiTrackingLink,
			"assembled_at":       dto.AssembledAt,
			"delivered_at":       dto.DeliveredAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("order", aggregate.ID().String())
	}

	// Lines are insert-only except for their replacement state.
	for _, line := range dto.Lines {
		if err := r.db.WithContext(ctx).Model(&LineDTO{}).
			Where("id = ?", line.ID).
			Updates(map[string]any{
				"needs_replacement": line.NeedsReplacement,
				"replacement_sku":   line.ReplacementSKU,
				"replacement_name":  line.ReplacementName,
			}).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID together with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all orders currently in the given status,
// oldest first.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("status = ?", int(status)).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetReadyForPickup retrieves all assembled courier-delivery orders waiting
// for a route, urgent orders first.
//
// Example:
//
//	ready, err := repo.GetReadyForPickup(ctx)
//	if err != nil {
//	    return fmt.Errorf("failed to get ready orders: %w", err)
//	}
//	for _, o := range ready {
//	    fmt.Printf("Waiting for pickup: %s\n", o.ID())
//	}
func (r *GormOrderRepository) GetReadyForPickup(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("status = ? AND delivery_type = ?", int(order.ReadyForPickup), int(order.CourierDelivery)).
		Order("is_urgent DESC, created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
