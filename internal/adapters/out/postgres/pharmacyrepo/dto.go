// Package pharmacyrepo provides data transfer objects and mapping functions
// for the pharmacy directory. Pharmacies are registered by a separate flow;
// this service only reads them for matching and assignment.
package pharmacyrepo

import (
	"github.com/google/uuid"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/pharmacy"
)

// PharmacyDTO represents the database structure for pharmacy records.
// Latitude and longitude are nullable: a pharmacy whose address failed
// geocoding is still listed, it just never participates in matching.
type PharmacyDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"index"`
	Address   string
	Latitude  *float64
	Longitude *float64
}

// TableName specifies the database table name for pharmacy entities.
func (PharmacyDTO) TableName() string {
	return "pharmacies"
}

// toDomain converts a database DTO to a pharmacy read model.
func toDomain(dto PharmacyDTO) (*pharmacy.Pharmacy, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	return pharmacy.NewPharmacy(id, dto.Name, dto.Address, location)
}
