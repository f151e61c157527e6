// Package pharmacy holds the read-only pharmacy entity consumed by the
// matching engine. Pharmacies are owned by an external profile service;
// this model carries only what order fulfillment needs.
package pharmacy

import (
	"errors"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/pkg/errs"
)

// ErrPharmacyIsNotConstructed is returned when a Pharmacy was not created
// through NewPharmacy.
var ErrPharmacyIsNotConstructed = errors.New("Pharmacy must be created via NewPharmacy constructor")

// Pharmacy is a read model of a pharmacy store. The location is optional:
// pharmacies without coordinates are excluded from geographic matching but
// remain eligible for the availability fallback.
type Pharmacy struct {
	id       kernel.UUID
	name     string
	address  string
	location *kernel.GeoPoint

	isConstructed bool
}

// NewPharmacy creates a pharmacy read model. Location may be nil.
func NewPharmacy(id kernel.UUID, name string, address string, location *kernel.GeoPoint) (*Pharmacy, error) {
	p := &Pharmacy{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setLocation(location),
	); err != nil {
		return nil, err
	}

	p.address = address
	return p, nil
}

// Validate ensures the Pharmacy was created through NewPharmacy.
func (p *Pharmacy) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPharmacyIsNotConstructed
	}
	return nil
}

// ID returns the pharmacy's unique identifier.
func (p *Pharmacy) ID() kernel.UUID {
	return p.id
}

// Name returns the pharmacy's display name.
func (p *Pharmacy) Name() string {
	return p.name
}

// Address returns the pharmacy's street address.
func (p *Pharmacy) Address() string {
	return p.address
}

// Location returns the pharmacy's coordinates, or nil when unknown.
func (p *Pharmacy) Location() *kernel.GeoPoint {
	return p.location
}

// HasLocation reports whether the pharmacy can participate in geo matching.
func (p *Pharmacy) HasLocation() bool {
	return p.location != nil
}

func (p *Pharmacy) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pharmacy) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Pharmacy) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	p.location = &loc
	return nil
}
