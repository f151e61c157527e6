package prescription_test

import (
	"testing"
	"time"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/prescription"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMedicines() []prescription.MedicineLine {
	return []prescription.MedicineLine{
		{Name: "Paracetamol", Dosage: "500mg", Quantity: 2},
		{Name: "Amoxicillin", Dosage: "250mg", Quantity: 1},
	}
}

func TestNewPrescription_Valid(t *testing.T) {
	id := kernel.NewUUID()
	patientID := kernel.NewUUID()
	validUntil := time.Now().Add(24 * time.Hour)

	p, err := prescription.NewPrescription(id, patientID, prescription.StatusActive, validUntil, validMedicines())

	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.True(t, p.ID().IsEqual(id))
	assert.True(t, p.PatientID().IsEqual(patientID))
	assert.Equal(t, prescription.StatusActive, p.Status())
	assert.Equal(t, validUntil, p.ValidUntil())
	assert.Len(t, p.Medicines(), 2)
}

func TestNewPrescription_InvalidArguments(t *testing.T) {
	validUntil := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name      string
		id        kernel.UUID
		patientID kernel.UUID
		status    prescription.Status
	}{
		{"zero_id", kernel.UUID{}, kernel.NewUUID(), prescription.StatusActive},
		{"zero_patient_id", kernel.NewUUID(), kernel.UUID{}, prescription.StatusActive},
		{"unknown_status", kernel.NewUUID(), kernel.NewUUID(), prescription.StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := prescription.NewPrescription(tt.id, tt.patientID, tt.status, validUntil, validMedicines())
			require.Error(t, err)
		})
	}
}

func TestPrescription_Validate_ZeroValue(t *testing.T) {
	var p prescription.Prescription
	require.ErrorIs(t, p.Validate(), prescription.ErrPrescriptionIsNotConstructed)
}

func TestPrescription_Medicines_ReturnsCopy(t *testing.T) {
	p, err := prescription.NewPrescription(
		kernel.NewUUID(), kernel.NewUUID(), prescription.StatusActive,
		time.Now().Add(time.Hour), validMedicines())
	require.NoError(t, err)

	medicines := p.Medicines()
	medicines[0].Name = "changed"

	assert.Equal(t, "Paracetamol", p.Medicines()[0].Name)
}

func TestPrescription_EnsureUsable(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		status     prescription.Status
		validUntil time.Time
		wantErr    bool
	}{
		{"active_and_valid", prescription.StatusActive, now.Add(time.Hour), false},
		{"active_but_expired", prescription.StatusActive, now.Add(-time.Hour), true},
		{"cancelled", prescription.StatusCancelled, now.Add(time.Hour), true},
		{"completed", prescription.StatusCompleted, now.Add(time.Hour), true},
		{"expired_status", prescription.StatusExpired, now.Add(time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := prescription.NewPrescription(
				kernel.NewUUID(), kernel.NewUUID(), tt.status, tt.validUntil, validMedicines())
			require.NoError(t, err)

			err = p.EnsureUsable(now)
			if tt.wantErr {
				require.ErrorIs(t, err, prescription.ErrPrescriptionNotUsable)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	status, err := prescription.ParseStatus("ACTIVE")
	require.NoError(t, err)
	assert.Equal(t, prescription.StatusActive, status)

	_, err = prescription.ParseStatus("SOMETHING_ELSE")
	require.Error(t, err)

	_, err = prescription.ParseStatus("UNKNOWN")
	require.Error(t, err)
}
