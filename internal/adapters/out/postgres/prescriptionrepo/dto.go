// Package prescriptionrepo provides data transfer objects and mapping
// functions for prescription lookups. Prescriptions are issued by an external
// system; order fulfillment only reads them.
package prescriptionrepo

import (
	"time"

	"github.com/google/uuid"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/prescription"
)

// PrescriptionDTO represents the database structure for prescriptions.
type PrescriptionDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PatientID  uuid.UUID `gorm:"type:uuid;index"`
	Status     string    `gorm:"type:varchar(16)"`
	ValidUntil time.Time
	Medicines  []MedicineLineDTO `gorm:"foreignKey:PrescriptionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for prescription entities.
func (PrescriptionDTO) TableName() string {
	return "prescriptions"
}

// MedicineLineDTO represents one prescribed medicine line.
type MedicineLineDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	PrescriptionID uuid.UUID `gorm:"type:uuid;index"`
	Position       int
	Name           string
	Dosage         string
	Quantity       int
}

// TableName specifies the database table name for prescription medicine lines.
func (MedicineLineDTO) TableName() string {
	return "prescription_medicines"
}

// toDomain converts a database DTO to a prescription read model.
func toDomain(dto PrescriptionDTO) (*prescription.Prescription, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	patientID, err := kernel.UUIDFromBytes(dto.PatientID[:])
	if err != nil {
		return nil, err
	}

	status, err := prescription.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	medicines := make([]prescription.MedicineLine, 0, len(dto.Medicines))
	for _, line := range dto.Medicines {
		medicines = append(medicines, prescription.MedicineLine{
			Name:     line.Name,
			Dosage:   line.Dosage,
			Quantity: line.Quantity,
		})
	}

	return prescription.NewPrescription(id, patientID, status, dto.ValidUntil, medicines)
}
