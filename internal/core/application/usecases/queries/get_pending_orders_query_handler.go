package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/order"
)

// GetPendingOrdersQueryHandler retrieves orders awaiting pharmacy assignment.
// Covers both freshly created pending orders and rejected orders the
// reassignment job has not yet rescued.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order queries.
// Requires a GORM database connection for query execution.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// GetPendingOrdersQueryResponse is a compact order read model for worklists.
type GetPendingOrdersQueryResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	Status          string
	DeliveryPincode string
	FinalAmount     float64
}

// Handle executes the query to retrieve all orders without a pharmacy.
// Results are sorted oldest-first so the longest-waiting patients surface.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			delivery_pincode,
			final_amount
		FROM orders
		WHERE status IN (?, ?)
		ORDER BY created_at
	`, order.Pending.String(), order.Rejected.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingOrdersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.OrderNumber, &resp.Status, &resp.DeliveryPincode, &resp.FinalAmount); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
