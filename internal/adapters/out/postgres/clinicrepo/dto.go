// Package clinicrepo provides data transfer objects and mapping functions for clinic persistence.
// This package implements the repository pattern for the clinic aggregate, handling
// the conversion between domain entities and database representations.
package clinicrepo

import (
	"fulfillment/internal/core/domain/model/clinic"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClinicDTO represents the database structure for persisting clinics.
// Coordinates are stored flat so route planning queries can read them
// without unpacking an embedded type.
type ClinicDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Address   string     `gorm:"type:varchar(512);not null"`
	Lat       float64    `gorm:"type:double precision;not null"`
	Lon       float64    `gorm:"type:double precision;not null"`
	ContactID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for clinic entities.
// Overrides GORM's default naming convention to use "clinics" instead of "clinic_dtos".
func (ClinicDTO) TableName() string {
	return "clinics"
}

// fromDomain converts a clinic domain object to its database representation.
func fromDomain(aggregate *clinic.Clinic) ClinicDTO {
	var contactID *uuid.UUID
	if aggregate.ContactID() != nil {
		raw := aggregate.ContactID().Bytes()
		contactID = &raw
	}

	return ClinicDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Address:   aggregate.Address(),
		Lat:       aggregate.Location().Lat(),
		Lon:       aggregate.Location().Lon(),
		ContactID: contactID,
	}
}

// toDomain converts a database DTO to a clinic domain object using RestoreClinic.
func toDomain(dto ClinicDTO) (*clinic.Clinic, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return nil, err
	}

	var contactID *kernel.UUID
	if dto.ContactID != nil {
		cID, contactErr := kernel.UUIDFromBytes((*dto.ContactID)[:])
		if contactErr != nil {
			return nil, contactErr
		}
		contactID = &cID
	}

	return clinic.RestoreClinic(id, dto.Name, dto.Address, location, contactID)
}
