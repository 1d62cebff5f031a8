// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting couriers.
type CourierDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	IsActive bool      `gorm:"type:boolean;not null;index"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain object to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		IsActive: aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a courier domain object using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.IsActive)
}
