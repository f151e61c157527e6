package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/pharmacy"
	"mediorder/internal/core/domain/services"
	"mediorder/internal/core/ports"
)

// GetNearbyPharmaciesQueryHandler resolves a pincode to coordinates and ranks
// pharmacies by distance. Pharmacies without geocoded coordinates are skipped.
// Propagates ports.ErrLocationNotResolved when the pincode cannot be resolved,
// which is distinct from an empty result.
type GetNearbyPharmaciesQueryHandler struct {
	db       *gorm.DB
	geocoder ports.Geocoder
}

// NewGetNearbyPharmaciesQueryHandler creates a handler for proximity searches.
// Requires a GORM database connection and a geocoder.
func NewGetNearbyPharmaciesQueryHandler(db *gorm.DB, geocoder ports.Geocoder) GetNearbyPharmaciesQueryHandler {
	return GetNearbyPharmaciesQueryHandler{db: db, geocoder: geocoder}
}

// Handle executes the proximity search.
// Returns pharmacies within the radius ordered nearest-first; an empty slice
// when nothing is in range.
func (h GetNearbyPharmaciesQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyPharmaciesQuery,
) ([]NearbyPharmacyResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	origin, err := h.geocoder.Geocode(ctx, query.Pincode())
	if err != nil {
		return nil, err
	}

	pharmacies, err := h.loadPharmacies(ctx)
	if err != nil {
		return nil, err
	}

	matches, err := services.NewPharmacyMatcher().FindNearby(origin, query.RadiusKm(), pharmacies)
	if err != nil {
		return nil, err
	}

	responses := make([]NearbyPharmacyResponse, 0, len(matches))
	for _, match := range matches {
		responses = append(responses, NearbyPharmacyResponse{
			ID:         match.Pharmacy.ID(),
			Name:       match.Pharmacy.Name(),
			Address:    match.Pharmacy.Address(),
			DistanceKm: match.DistanceKm,
		})
	}

	return responses, nil
}

func (h GetNearbyPharmaciesQueryHandler) loadPharmacies(ctx context.Context) ([]*pharmacy.Pharmacy, error) {
	pharmacies := make([]*pharmacy.Pharmacy, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			latitude,
			longitude
		FROM pharmacies
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name, address string
		var latitude, longitude sql.NullFloat64

		if err = rows.Scan(&id, &name, &address, &latitude, &longitude); err != nil {
			return nil, err
		}

		pharmacyID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		var location *kernel.GeoPoint
		if latitude.Valid && longitude.Valid {
			point, locErr := kernel.NewGeoPoint(latitude.Float64, longitude.Float64)
			if locErr != nil {
				return nil, locErr
			}
			location = &point
		}

		p, pharmacyErr := pharmacy.NewPharmacy(pharmacyID, name, address, location)
		if pharmacyErr != nil {
			return nil, pharmacyErr
		}
		pharmacies = append(pharmacies, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pharmacies, nil
}
