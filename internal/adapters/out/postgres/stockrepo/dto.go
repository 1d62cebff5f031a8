// Package stockrepo provides data transfer objects and mapping functions for stock persistence.
// Stock records are keyed by SKU; the available quantity is mutated through
// conditional updates so reservations stay correct under concurrency.
package stockrepo

import (
	"fulfillment/internal/core/domain/model/stock"
)

// StockRecordDTO represents the database structure for a per-SKU stock record.
type StockRecordDTO struct {
	SKU          string `gorm:"type:varchar(255);primaryKey"`
	AvailableQty int    `gorm:"type:int;not null"`
}

// TableName specifies the database table name for stock records.
// Overrides GORM's default naming convention to use "stock_records" instead of "stock_record_dtos".
func (StockRecordDTO) TableName() string {
	return "stock_records"
}

// toDomain converts a database DTO to a stock record domain object.
func toDomain(dto StockRecordDTO) (*stock.Record, error) {
	return stock.NewRecord(dto.SKU, dto.AvailableQty)
}
