// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status column doubles as the optimistic concurrency token: updates are
// issued with the status the aggregate was loaded in.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ManagerID        uuid.UUID  `gorm:"type:uuid;not null"`
	ClinicID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID        *uuid.UUID `gorm:"type:uuid;index"`
	Status           int        `gorm:"type:int;not null;index"`
	IsUrgent         bool       `gorm:"type:boolean;not null"`
	DeliveryType     int        `gorm:"type:int;not null"`
	TaxiTrackingLink *string    `gorm:"type:varchar(2048)"`
	CreatedAt        time.Time  `gorm:"type:timestamptz;not null"`
	AssembledAt      *time.Time `gorm:"type:timestamptz"`
	DeliveredAt      *time.Time `gorm:"type:timestamptz"`
	Lines            []LineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders" instead of "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents the database structure for persisting order lines.
// Links to its order via foreign key and carries the replacement state.
type LineDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index"`
	SKU              string    `gorm:"type:varchar(255);not null"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Quantity         int       `gorm:"type:int;not null"`
	NeedsReplacement bool      `gorm:"type:boolean;not null"`
	ReplacementSKU   *string   `gorm:"type:varchar(255)"`
	ReplacementName  *string   `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines" instead of "line_dtos".
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the aggregate root and all of its lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			ID:               line.ID().Bytes(),
			OrderID:          orderID,
			SKU:              line.SKU(),
			Name:             line.Name(),
			Quantity:         line.Quantity(),
			NeedsReplacement: line.NeedsReplacement(),
			ReplacementSKU:   line.ReplacementSKU(),
			ReplacementName:  line.ReplacementName(),
		})
	}

	var courierID *uuid.UUID
	if aggregate.CourierID() != nil {
		raw := aggregate.CourierID().Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:               orderID,
		ManagerID:        aggregate.ManagerID().Bytes(),
		ClinicID:         aggregate.ClinicID().Bytes(),
		CourierID:        courierID,
		Status:           int(aggregate.Status()),
		IsUrgent:         aggregate.IsUrgent(),
		DeliveryType:     int(aggregate.DeliveryType()),
		TaxiTrackingLink: aggregate.TaxiTrackingLink(),
		CreatedAt:        aggregate.CreatedAt(),
		AssembledAt:      aggregate.AssembledAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		Lines:            lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	managerID, err := kernel.UUIDFromBytes(dto.ManagerID[:])
	if err != nil {
		return nil, err
	}

	clinicID, err := kernel.UUIDFromBytes(dto.ClinicID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id, managerID, clinicID,
		lines,
		dto.IsUrgent,
		order.DeliveryType(dto.DeliveryType),
		order.Status(dto.Status),
		courierID,
		dto.TaxiTrackingLink,
		dto.CreatedAt,
		dto.AssembledAt, dto.DeliveredAt,
	)
}

// lineToDomain converts a line DTO to a domain entity.
// Uses RestoreLine to reconstruct the entity with its persisted replacement state.
func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(id, dto.SKU, dto.Name, dto.Quantity,
		dto.NeedsReplacement, dto.ReplacementSKU, dto.ReplacementName)
}
