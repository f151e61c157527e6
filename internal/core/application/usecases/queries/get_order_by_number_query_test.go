package queries_test

import (
	"testing"
	"time"

	"mediorder/internal/core/application/usecases/queries"
	"mediorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderByNumberQuery_Valid(t *testing.T) {
	number := kernel.GenerateOrderNumber(time.Now())

	query, err := queries.NewGetOrderByNumberQuery(number)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderNumber().IsEqual(number))
}

func TestNewGetOrderByNumberQuery_ZeroOrderNumber(t *testing.T) {
	_, err := queries.NewGetOrderByNumberQuery(kernel.OrderNumber{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderNumberIsRequired)
}

func TestGetOrderByNumberQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderByNumberQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderByNumberQueryIsNotConstructed)
}
