package pharmacyrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/pharmacy"
	"mediorder/internal/pkg/errs"
)

// GormPharmacyRepository implements ports.PharmacyRepository using GORM.
type GormPharmacyRepository struct {
	db *gorm.DB
}

// NewGormPharmacyRepository creates a new GORM pharmacy repository.
func NewGormPharmacyRepository(db *gorm.DB) *GormPharmacyRepository {
	return &GormPharmacyRepository{db: db}
}

// Get retrieves a pharmacy by ID.
func (r *GormPharmacyRepository) Get(ctx context.Context, id kernel.UUID) (*pharmacy.Pharmacy, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PharmacyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pharmacy", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered pharmacy in stable name order.
// The fallback assignment policy relies on this ordering being deterministic.
func (r *GormPharmacyRepository) GetAll(ctx context.Context) ([]*pharmacy.Pharmacy, error) {
	var dtos []PharmacyDTO
	if err := r.db.WithContext(ctx).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	pharmacies := make([]*pharmacy.Pharmacy, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pharmacies = append(pharmacies, p)
	}

	return pharmacies, nil
}
