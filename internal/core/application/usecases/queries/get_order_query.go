// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load order: %w", err)
//	}
//	fmt.Printf("order %s is %s\n", resp.OrderNumber, resp.Status)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to load an order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to load.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.orderID = id
	return nil
}

// OrderItemResponse represents one medicine line of an order in the read model.
type OrderItemResponse struct {
	MedicineName string
	Dosage       string
	Quantity     int
	Status       string
}

// GetOrderQueryResponse represents the full order read model served over HTTP.
type GetOrderQueryResponse struct {
	ID                   kernel.UUID
	OrderNumber          string
	PrescriptionID       kernel.UUID
	PatientID            kernel.UUID
	PharmacyID           *kernel.UUID
	Status               string
	OrderType            string
	TotalAmount          float64
	DeliveryFee          float64
	FinalAmount          float64
	DeliveryAddress      string
	DeliveryPincode      string
	PatientPhone         string
	SpecialInstructions  string
	PharmacyNotes        string
	RejectionReason      string
	Items                []OrderItemResponse
	Version              int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
	AcceptedAt           *time.Time
	ExpectedDeliveryTime *time.Time
}
