// Package prescription holds the read-only prescription entity consumed when
// creating medicine orders. Prescriptions are authored elsewhere; order
// fulfillment only checks usability and copies the medicine lines.
package prescription

import (
	"errors"
	"fmt"
	"time"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/pkg/errs"
)

// Status represents the prescription lifecycle as published by the
// prescription service.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive prescriptions may be ordered against.
	StatusActive

	// StatusExpired prescriptions are past their validity.
	StatusExpired

	// StatusCancelled prescriptions were withdrawn by the doctor.
	StatusCancelled

	// StatusCompleted prescriptions were fully dispensed.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusActive:    "ACTIVE",
		StatusExpired:   "EXPIRED",
		StatusCancelled: "CANCELLED",
		StatusCompleted: "COMPLETED",
	}
}

// ParseStatus converts the wire representation into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"prescriptionStatus", fmt.Errorf("%q is not a valid prescription status", s))
}

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"prescriptionStatus", fmt.Errorf("%d is not a valid prescription status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

var (
	// ErrPrescriptionIsNotConstructed is returned when a Prescription was not
	// created through NewPrescription.
	ErrPrescriptionIsNotConstructed = errors.New(
		"Prescription must be created via NewPrescription constructor")

	// ErrPrescriptionNotUsable is returned when an order is attempted against
	// a prescription that is inactive or past its validity.
	ErrPrescriptionNotUsable = errors.New("prescription is not usable")
)

// MedicineLine is a single prescribed medicine. Order items copy these
// values at creation time.
type MedicineLine struct {
	Name     string
	Dosage   string
	Quantity int
}

// Prescription is a read model of a prescription. Order fulfillment never
// mutates it.
type Prescription struct {
	id         kernel.UUID
	patientID  kernel.UUID
	status     Status
	validUntil time.Time
	medicines  []MedicineLine

	isConstructed bool
}

// NewPrescription creates a prescription read model.
func NewPrescription(
	id kernel.UUID,
	patientID kernel.UUID,
	status Status,
	validUntil time.Time,
	medicines []MedicineLine,
) (*Prescription, error) {
	p := &Prescription{
		validUntil:    validUntil,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setPatientID(patientID),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	p.medicines = make([]MedicineLine, len(medicines))
	copy(p.medicines, medicines)

	return p, nil
}

// Validate ensures the Prescription was created through NewPrescription.
func (p *Prescription) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPrescriptionIsNotConstructed
	}
	return nil
}

// ID returns the prescription's unique identifier.
func (p *Prescription) ID() kernel.UUID {
	return p.id
}

// PatientID returns the patient the prescription was issued to.
func (p *Prescription) PatientID() kernel.UUID {
	return p.patientID
}

// Status returns the prescription lifecycle status.
func (p *Prescription) Status() Status {
	return p.status
}

// ValidUntil returns the prescription's expiry timestamp.
func (p *Prescription) ValidUntil() time.Time {
	return p.validUntil
}

// Medicines returns a copy of the prescribed medicine lines.
func (p *Prescription) Medicines() []MedicineLine {
	medicines := make([]MedicineLine, len(p.medicines))
	copy(medicines, p.medicines)
	return medicines
}

// EnsureUsable verifies the prescription is ACTIVE and not past its validity
// at the given time. Returns an error wrapping ErrPrescriptionNotUsable
// otherwise.
func (p *Prescription) EnsureUsable(now time.Time) error {
	if p.status != StatusActive {
		return fmt.Errorf("%w: status is %s", ErrPrescriptionNotUsable, p.status)
	}

	if p.validUntil.Before(now) {
		return fmt.Errorf("%w: expired at %s", ErrPrescriptionNotUsable, p.validUntil.Format(time.RFC3339))
	}

	return nil
}

func (p *Prescription) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Prescription) setPatientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("patientId", err)
	}
	p.patientID = id
	return nil
}

func (p *Prescription) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
