package services

import (
	"sort"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/pharmacy"
	"mediorder/internal/pkg/errs"
)

// Delivery policy breakpoints. These are deliberate business constants, not
// derived values: external integrations depend on the exact tiers.
const (
	nearbyDistanceKm = 5.0
	mediumDistanceKm = 10.0
	farDistanceKm    = 20.0

	// BaseDeliveryFee is the distance-independent component of every
	// delivery fee quote.
	BaseDeliveryFee = 20.0

	mediumDistanceSurcharge  = 10.0
	farDistanceSurcharge     = 20.0
	veryFarDistanceSurcharge = 30.0

	nearbyDeliveryMinutes  = 30
	mediumDeliveryMinutes  = 60
	farDeliveryMinutes     = 120
	veryFarDeliveryMinutes = 240
)

// PharmacyMatch pairs a pharmacy with its distance from the delivery point.
type PharmacyMatch struct {
	Pharmacy   *pharmacy.Pharmacy
	DistanceKm float64
}

// PharmacyMatcher is a domain service that ranks pharmacies by proximity to
// a delivery location and quotes distance-based delivery fees and time
// estimates.
//
// Business rules:
//   - pharmacies without coordinates never participate in matching
//   - results are ordered nearest-first; ties keep input order
//   - an empty pharmacy set yields an empty result, not an error
type PharmacyMatcher struct{}

// NewPharmacyMatcher creates a new PharmacyMatcher instance.
func NewPharmacyMatcher() PharmacyMatcher {
	return PharmacyMatcher{}
}

// FindNearby returns the pharmacies within radiusKm of origin, ordered by
// ascending distance. Pharmacies without coordinates are skipped.
func (m PharmacyMatcher) FindNearby(
	origin kernel.GeoPoint,
	radiusKm float64,
	pharmacies []*pharmacy.Pharmacy,
) ([]PharmacyMatch, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}

	if radiusKm < 0 {
		return nil, errs.NewValueIsOutOfRangeError("radiusKm", radiusKm, 0, "unbounded")
	}

	matches := make([]PharmacyMatch, 0, len(pharmacies))
	for _, p := range pharmacies {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if !p.HasLocation() {
			continue
		}

		distance, err := origin.DistanceKmTo(*p.Location())
		if err != nil {
			return nil, err
		}

		if distance <= radiusKm {
			matches = append(matches, PharmacyMatch{Pharmacy: p, DistanceKm: distance})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})

	return matches, nil
}

// FindNearest returns the closest pharmacy within radiusKm of origin, or nil
// when none qualifies.
func (m PharmacyMatcher) FindNearest(
	origin kernel.GeoPoint,
	radiusKm float64,
	pharmacies []*pharmacy.Pharmacy,
) (*PharmacyMatch, error) {
	matches, err := m.FindNearby(origin, radiusKm, pharmacies)
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		return nil, nil
	}

	return &matches[0], nil
}

// EstimatedDeliveryMinutes quotes a delivery time estimate for the given
// distance. The result is a non-decreasing step function of distance.
func (m PharmacyMatcher) EstimatedDeliveryMinutes(distanceKm float64) int {
	switch {
	case distanceKm <= nearbyDistanceKm:
		return nearbyDeliveryMinutes
	case distanceKm <= mediumDistanceKm:
		return mediumDeliveryMinutes
	case distanceKm <= farDistanceKm:
		return farDeliveryMinutes
	default:
		return veryFarDeliveryMinutes
	}
}

// DeliveryFee quotes the delivery fee for the given distance: the base fee
// plus a distance surcharge. The result is a non-decreasing step function of
// distance.
func (m PharmacyMatcher) DeliveryFee(distanceKm float64) float64 {
	switch {
	case distanceKm <= nearbyDistanceKm:
		return BaseDeliveryFee
	case distanceKm <= mediumDistanceKm:
		return BaseDeliveryFee + mediumDistanceSurcharge
	case distanceKm <= farDistanceKm:
		return BaseDeliveryFee + farDistanceSurcharge
	default:
		return BaseDeliveryFee + veryFarDistanceSurcharge
	}
}
