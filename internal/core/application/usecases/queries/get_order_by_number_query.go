package queries

import (
	"errors"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/pkg/guard"
)

var ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
	"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
)

// GetOrderByNumberQuery retrieves a single order by the human-readable order
// number printed on receipts and notifications.
type GetOrderByNumberQuery struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query to load an order by its number.
func NewGetOrderByNumberQuery(orderNumber kernel.OrderNumber) (GetOrderByNumberQuery, error) {
	q := GetOrderByNumberQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderNumber(orderNumber); err != nil {
		return GetOrderByNumberQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByNumberQueryIsNotConstructed if validation fails.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// OrderNumber returns the business order number to look up.
func (q GetOrderByNumberQuery) OrderNumber() kernel.OrderNumber {
	return q.orderNumber
}

func (q *GetOrderByNumberQuery) setOrderNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}

	q.orderNumber = number
	return nil
}
