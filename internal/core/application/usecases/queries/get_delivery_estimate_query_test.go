package queries_test

import (
	"testing"

	"mediorder/internal/core/application/usecases/queries"
	"mediorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDeliveryEstimateQuery_Valid(t *testing.T) {
	pharmacyID := kernel.NewUUID()

	query, err := queries.NewGetDeliveryEstimateQuery("560001", pharmacyID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "560001", query.Pincode())
	assert.True(t, query.PharmacyID().IsEqual(pharmacyID))
}

func TestNewGetDeliveryEstimateQuery_EmptyPincode(t *testing.T) {
	_, err := queries.NewGetDeliveryEstimateQuery("", kernel.NewUUID())
	require.Error(t, err)
}

func TestNewGetDeliveryEstimateQuery_ZeroPharmacyID(t *testing.T) {
	_, err := queries.NewGetDeliveryEstimateQuery("560001", kernel.UUID{})
	require.Error(t, err)
}

func TestGetDeliveryEstimateQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDeliveryEstimateQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDeliveryEstimateQueryIsNotConstructed)
}
