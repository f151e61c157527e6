package commands

import (
	"context"
	"errors"
	"time"

	"mediorder/internal/core/domain/model/order"
	"mediorder/internal/core/domain/model/pharmacy"
	"mediorder/internal/core/domain/services"
	"mediorder/internal/core/ports"
)

// ErrNoPharmacyAvailable is returned when the pharmacy directory is empty and
// no assignment is possible at all.
var ErrNoPharmacyAvailable = errors.New("no pharmacy available")

// assignmentRadiusKm bounds the proximity search during auto-assignment.
const assignmentRadiusKm = 10.0

// assignNearestPharmacy binds a pharmacy to the order: the nearest one within
// assignmentRadiusKm of the geocoded delivery pincode, or any registered
// pharmacy when nothing is in range (availability over precision). Geocoding
// trouble degrades to the fallback as well; only an empty directory fails,
// with ErrNoPharmacyAvailable.
func assignNearestPharmacy(
	ctx context.Context,
	geocoder ports.Geocoder,
	pharmacyRepo ports.PharmacyRepository,
	aggregate *order.Order,
	pincode string,
	now time.Time,
) error {
	pharmacies, err := pharmacyRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(pharmacies) == 0 {
		return ErrNoPharmacyAvailable
	}

	var chosen *pharmacy.Pharmacy

	origin, err := geocoder.Geocode(ctx, pincode)
	if err == nil {
		match, matchErr := services.NewPharmacyMatcher().FindNearest(origin, assignmentRadiusKm, pharmacies)
		if matchErr != nil {
			return matchErr
		}
		if match != nil {
			chosen = match.Pharmacy
		}
	}

	if chosen == nil {
		chosen = pharmacies[0]
	}

	return aggregate.AssignPharmacy(chosen.ID(), now)
}
