package ports

import (
	"context"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/prescription"
)

// PrescriptionRepository defines read access to prescriptions.
// Prescriptions are issued elsewhere; order creation only needs to verify
// that a prescription exists, is active, and has not expired.
type PrescriptionRepository interface {
	// Get retrieves a prescription by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*prescription.Prescription, error)
}
