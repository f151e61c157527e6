package queries

import (
	"errors"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/pkg/errs"
	"mediorder/internal/pkg/guard"
)

var ErrGetNearbyPharmaciesQueryIsNotConstructed = errors.New(
	"GetNearbyPharmaciesQuery must be created via NewGetNearbyPharmaciesQuery constructor",
)

// GetNearbyPharmaciesQuery finds pharmacies around a delivery pincode,
// ordered nearest-first.
//
// Example:
//
//	query, err := NewGetNearbyPharmaciesQuery("560001", 10)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetNearbyPharmaciesQueryHandler(db, geocoder)
//	pharmacies, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to find pharmacies: %w", err)
//	}
type GetNearbyPharmaciesQuery struct { //nolint:recvcheck //using for validation
	pincode  string
	radiusKm float64

	guard guard.ConstructorGuard
}

// NewGetNearbyPharmaciesQuery creates a proximity search query.
// The pincode must be non-empty and the radius non-negative.
func NewGetNearbyPharmaciesQuery(pincode string, radiusKm float64) (GetNearbyPharmaciesQuery, error) {
	q := GetNearbyPharmaciesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setPincode(pincode),
		q.setRadiusKm(radiusKm),
	); err != nil {
		return GetNearbyPharmaciesQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNearbyPharmaciesQueryIsNotConstructed if validation fails.
func (q GetNearbyPharmaciesQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyPharmaciesQueryIsNotConstructed)
}

// Pincode returns the postal code at the center of the search.
func (q GetNearbyPharmaciesQuery) Pincode() string {
	return q.pincode
}

// RadiusKm returns the search radius in kilometers.
func (q GetNearbyPharmaciesQuery) RadiusKm() float64 {
	return q.radiusKm
}

func (q *GetNearbyPharmaciesQuery) setPincode(pincode string) error {
	if pincode == "" {
		return errs.NewValueIsRequiredError("pincode")
	}

	q.pincode = pincode
	return nil
}

func (q *GetNearbyPharmaciesQuery) setRadiusKm(radiusKm float64) error {
	if radiusKm < 0 {
		return errs.NewValueIsOutOfRangeError("radiusKm", radiusKm, 0, "unbounded")
	}

	q.radiusKm = radiusKm
	return nil
}

// NearbyPharmacyResponse pairs a pharmacy with its distance from the search center.
type NearbyPharmacyResponse struct {
	ID         kernel.UUID
	Name       string
	Address    string
	DistanceKm float64
}
