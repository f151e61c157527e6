package queries

import (
	"errors"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/pkg/errs"
	"mediorder/internal/pkg/guard"
)

var ErrGetDeliveryEstimateQueryIsNotConstructed = errors.New(
	"GetDeliveryEstimateQuery must be created via NewGetDeliveryEstimateQuery constructor",
)

// GetDeliveryEstimateQuery quotes the distance, time and fee for delivering
// from a specific pharmacy to a delivery pincode.
//
// Example:
//
//	query, err := NewGetDeliveryEstimateQuery("560001", pharmacyID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetDeliveryEstimateQueryHandler(db, geocoder)
//	estimate, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to estimate delivery: %w", err)
//	}
//	fmt.Printf("%.1f km, ~%d min, fee %.0f\n",
//	    estimate.DistanceKm, estimate.EstimatedMinutes, estimate.DeliveryFee)
type GetDeliveryEstimateQuery struct { //nolint:recvcheck //using for validation
	pincode    string
	pharmacyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryEstimateQuery creates a delivery estimate query.
func NewGetDeliveryEstimateQuery(pincode string, pharmacyID kernel.UUID) (GetDeliveryEstimateQuery, error) {
	q := GetDeliveryEstimateQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setPincode(pincode),
		q.setPharmacyID(pharmacyID),
	); err != nil {
		return GetDeliveryEstimateQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryEstimateQueryIsNotConstructed if validation fails.
func (q GetDeliveryEstimateQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryEstimateQueryIsNotConstructed)
}

// Pincode returns the delivery postal code.
func (q GetDeliveryEstimateQuery) Pincode() string {
	return q.pincode
}

// PharmacyID returns the pharmacy the delivery would start from.
func (q GetDeliveryEstimateQuery) PharmacyID() kernel.UUID {
	return q.pharmacyID
}

func (q *GetDeliveryEstimateQuery) setPincode(pincode string) error {
	if pincode == "" {
		return errs.NewValueIsRequiredError("pincode")
	}

	q.pincode = pincode
	return nil
}

func (q *GetDeliveryEstimateQuery) setPharmacyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.pharmacyID = id
	return nil
}

// GetDeliveryEstimateQueryResponse carries the distance-based delivery quote.
type GetDeliveryEstimateQueryResponse struct {
	PharmacyID       kernel.UUID
	PharmacyName     string
	DistanceKm       float64
	EstimatedMinutes int
	DeliveryFee      float64
}
