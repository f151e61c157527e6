package queries

import (
	"context"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/order"
)

// orderByNumberReader is the slice of the order repository this handler needs.
type orderByNumberReader interface {
	GetByOrderNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)
}

// GetOrderByNumberQueryHandler resolves an order through its business order
// number. The number is the aggregate's secondary identity, so the lookup goes
// through the order repository and the loaded aggregate is projected onto the
// same read model the by-id query serves.
type GetOrderByNumberQueryHandler struct {
	orders orderByNumberReader
}

// NewGetOrderByNumberQueryHandler creates a handler for order number lookups.
func NewGetOrderByNumberQueryHandler(orders orderByNumberReader) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{orders: orders}
}

// Handle executes the query to load one order by number with its items.
// Returns errs.ErrObjectNotFound when no order carries the number.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	aggregate, err := h.orders.GetByOrderNumber(ctx, query.OrderNumber())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return toOrderResponse(aggregate), nil
}

func toOrderResponse(o *order.Order) GetOrderQueryResponse {
	items := make([]OrderItemResponse, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = OrderItemResponse{
			MedicineName: item.MedicineName(),
			Dosage:       item.Dosage(),
			Quantity:     item.Quantity(),
			Status:       item.Status().String(),
		}
	}

	return GetOrderQueryResponse{
		ID:                   o.ID(),
		OrderNumber:          o.OrderNumber().String(),
		PrescriptionID:       o.PrescriptionID(),
		PatientID:            o.PatientID(),
		PharmacyID:           o.Pharmacy(),
		Status:               o.Status().String(),
		OrderType:            o.OrderType().String(),
		TotalAmount:          o.TotalAmount(),
		DeliveryFee:          o.DeliveryFee(),
		FinalAmount:          o.FinalAmount(),
		DeliveryAddress:      o.DeliveryAddress(),
		DeliveryPincode:      o.DeliveryPincode(),
		PatientPhone:         o.PatientPhone(),
		SpecialInstructions:  o.SpecialInstructions(),
		PharmacyNotes:        o.PharmacyNotes(),
		RejectionReason:      o.RejectionReason(),
		Items:                items,
		Version:              o.Version(),
		CreatedAt:            o.CreatedAt(),
		UpdatedAt:            o.UpdatedAt(),
		AcceptedAt:           o.AcceptedAt(),
		ExpectedDeliveryTime: o.ExpectedDeliveryTime(),
	}
}
