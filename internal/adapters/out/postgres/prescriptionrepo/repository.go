package prescriptionrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/prescription"
	"mediorder/internal/pkg/errs"
)

// GormPrescriptionRepository implements ports.PrescriptionRepository using GORM.
type GormPrescriptionRepository struct {
	db *gorm.DB
}

// NewGormPrescriptionRepository creates a new GORM prescription repository.
func NewGormPrescriptionRepository(db *gorm.DB) *GormPrescriptionRepository {
	return &GormPrescriptionRepository{db: db}
}

// Get retrieves a prescription with its medicine lines by ID.
func (r *GormPrescriptionRepository) Get(ctx context.Context, id kernel.UUID) (*prescription.Prescription, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PrescriptionDTO
	err := r.db.WithContext(ctx).
		Preload("Medicines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("prescription", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
