package patientrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/patient"
	"mediorder/internal/pkg/errs"
)

// GormPatientRepository implements ports.PatientRepository using GORM.
type GormPatientRepository struct {
	db *gorm.DB
}

// NewGormPatientRepository creates a new GORM patient repository.
func NewGormPatientRepository(db *gorm.DB) *GormPatientRepository {
	return &GormPatientRepository{db: db}
}

// Get retrieves a patient by ID.
func (r *GormPatientRepository) Get(ctx context.Context, id kernel.UUID) (*patient.Patient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PatientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("patient", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
