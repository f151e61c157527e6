package ports

import (
	"context"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/pharmacy"
)

// PharmacyRepository defines read access to the pharmacy directory.
// Pharmacies are managed by a separate registration flow; the order service
// only reads them for matching and assignment.
type PharmacyRepository interface {
	// Get retrieves a pharmacy by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pharmacy.Pharmacy, error)

	// GetAll retrieves every registered pharmacy, including those
	// without geocoded coordinates.
	GetAll(ctx context.Context) ([]*pharmacy.Pharmacy, error)
}
