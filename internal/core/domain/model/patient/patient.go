// Package patient holds the read-only patient entity consumed when creating
// medicine orders.
package patient

import (
	"errors"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/pkg/errs"
)

// ErrPatientIsNotConstructed is returned when a Patient was not created
// through NewPatient.
var ErrPatientIsNotConstructed = errors.New("Patient must be created via NewPatient constructor")

// Patient is a read model of a patient profile. Order fulfillment copies the
// phone number onto new orders and never mutates the profile.
type Patient struct {
	id      kernel.UUID
	name    string
	phone   string
	address string

	isConstructed bool
}

// NewPatient creates a patient read model.
func NewPatient(id kernel.UUID, name string, phone string, address string) (*Patient, error) {
	p := &Patient{
		phone:         phone,
		address:       address,
		isConstructed: true,
	}

	if err := errors.Join(p.setID(id), p.setName(name)); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Patient was created through NewPatient.
func (p *Patient) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPatientIsNotConstructed
	}
	return nil
}

// ID returns the patient's unique identifier.
func (p *Patient) ID() kernel.UUID {
	return p.id
}

// Name returns the patient's display name.
func (p *Patient) Name() string {
	return p.name
}

// Phone returns the patient's contact number.
func (p *Patient) Phone() string {
	return p.phone
}

// Address returns the patient's home address.
func (p *Patient) Address() string {
	return p.address
}

func (p *Patient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Patient) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
