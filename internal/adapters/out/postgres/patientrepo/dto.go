// Package patientrepo provides data transfer objects and mapping functions
// for patient lookups.
package patientrepo

import (
	"github.com/google/uuid"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/patient"
)

// PatientDTO represents the database structure for patient records.
type PatientDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Phone   string `gorm:"type:varchar(32)"`
	Address string
}

// TableName specifies the database table name for patient entities.
func (PatientDTO) TableName() string {
	return "patients"
}

// toDomain converts a database DTO to a patient read model.
func toDomain(dto PatientDTO) (*patient.Patient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return patient.NewPatient(id, dto.Name, dto.Phone, dto.Address)
}
