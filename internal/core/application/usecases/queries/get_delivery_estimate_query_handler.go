package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/services"
	"mediorder/internal/core/ports"
	"mediorder/internal/pkg/errs"
)

// GetDeliveryEstimateQueryHandler quotes delivery distance, time and fee
// between a pharmacy and a delivery pincode using the matcher's step
// functions.
type GetDeliveryEstimateQueryHandler struct {
	db       *gorm.DB
	geocoder ports.Geocoder
}

// NewGetDeliveryEstimateQueryHandler creates a handler for delivery estimates.
// Requires a GORM database connection and a geocoder.
func NewGetDeliveryEstimateQueryHandler(db *gorm.DB, geocoder ports.Geocoder) GetDeliveryEstimateQueryHandler {
	return GetDeliveryEstimateQueryHandler{db: db, geocoder: geocoder}
}

// Handle executes the estimate query.
// Returns errs.ErrObjectNotFound when the pharmacy does not exist and a
// validation error when it has no geocoded coordinates to measure from.
func (h GetDeliveryEstimateQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryEstimateQuery,
) (GetDeliveryEstimateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryEstimateQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			latitude,
			longitude
		FROM pharmacies
		WHERE id = ?
	`, query.PharmacyID().String()).Row()

	var name string
	var latitude, longitude sql.NullFloat64

	err := row.Scan(&name, &latitude, &longitude)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryEstimateQueryResponse{}, errs.NewObjectNotFoundError("pharmacy", query.PharmacyID().String())
	}
	if err != nil {
		return GetDeliveryEstimateQueryResponse{}, err
	}

	if !latitude.Valid || !longitude.Valid {
		return GetDeliveryEstimateQueryResponse{}, errs.NewValueIsInvalidErrorWithCause(
			"pharmacyId", errors.New("pharmacy has no geocoded location"))
	}

	pharmacyLocation, err := kernel.NewGeoPoint(latitude.Float64, longitude.Float64)
	if err != nil {
		return GetDeliveryEstimateQueryResponse{}, err
	}

	destination, err := h.geocoder.Geocode(ctx, query.Pincode())
	if err != nil {
		return GetDeliveryEstimateQueryResponse{}, err
	}

	distanceKm, err := pharmacyLocation.DistanceKmTo(destination)
	if err != nil {
		return GetDeliveryEstimateQueryResponse{}, err
	}

	matcher := services.NewPharmacyMatcher()

	return GetDeliveryEstimateQueryResponse{
		PharmacyID:       query.PharmacyID(),
		PharmacyName:     name,
		DistanceKm:       distanceKm,
		EstimatedMinutes: matcher.EstimatedDeliveryMinutes(distanceKm),
		DeliveryFee:      matcher.DeliveryFee(distanceKm),
	}, nil
}
