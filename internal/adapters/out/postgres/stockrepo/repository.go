package stockrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockRepository implements StockRepository using GORM.
// Stock records are not aggregates with identity history; no tracking is done.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// Get retrieves the stock record for a SKU.
func (r *GormStockRepository) Get(ctx context.Context, sku string) (*stock.Record, error) {
	if sku == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}

	var dto StockRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sku", sku)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ReserveQty decrements available quantity by qty only if at least qty remains.
// The guard lives in the UPDATE's WHERE clause, so two transactions racing for
// the last units cannot both win. A zero-row result is disambiguated by
// re-reading the record: missing SKU or insufficient stock.
func (r *GormStockRepository) ReserveQty(ctx context.Context, sku string, qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidError("qty")
	}

	result := r.db.WithContext(ctx).Model(&StockRecordDTO{}).
		Where("sku = ? AND available_qty >= ?", sku, qty).
		Update("available_qty", gorm.Expr("available_qty - ?", qty))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		record, err := r.Get(ctx, sku)
		if err != nil {
			return err
		}
		return errs.NewInsufficientStockError(sku, record.Available(), qty)
	}

	return nil
}

// ReleaseQty increments available quantity by qty.
func (r *GormStockRepository) ReleaseQty(ctx context.Context, sku string, qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidError("qty")
	}

	result := r.db.WithContext(ctx).Model(&StockRecordDTO{}).
		Where("sku = ?", sku).
		Update("available_qty", gorm.Expr("available_qty + ?", qty))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("sku", sku)
	}

	return nil
}

// Overwrite replaces the available quantity wholesale, creating the record
// when the SKU is not yet known. Last writer wins.
func (r *GormStockRepository) Overwrite(ctx context.Context, sku string, qty int) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	if qty < 0 {
		return errs.NewValueIsInvalidError("qty")
	}

	dto := StockRecordDTO{SKU: sku, AvailableQty: qty}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sku"}},
			DoUpdates: clause.AssignmentColumns([]string{"available_qty"}),
		}).
		Create(&dto).Error
}
