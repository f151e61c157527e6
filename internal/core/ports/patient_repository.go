package ports

import (
	"context"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/patient"
)

// PatientRepository defines read access to patient records.
type PatientRepository interface {
	// Get retrieves a patient by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*patient.Patient, error)
}
