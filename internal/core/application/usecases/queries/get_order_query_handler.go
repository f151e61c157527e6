package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/pkg/errs"
)

// GetOrderQueryHandler loads an order read model from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to load one order with its items.
// Returns errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			prescription_id,
			patient_id,
			pharmacy_id,
			status,
			order_type,
			total_amount,
			delivery_fee,
			final_amount,
			delivery_address,
			delivery_pincode,
			patient_phone,
			special_instructions,
			pharmacy_notes,
			rejection_reason,
			version,
			created_at,
			updated_at,
			accepted_at,
			expected_delivery_time
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var prescriptionID, patientID uuid.UUID
	var pharmacyID uuid.NullUUID
	var acceptedAt, expectedDeliveryTime sql.NullTime

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&prescriptionID,
		&patientID,
		&pharmacyID,
		&resp.Status,
		&resp.OrderType,
		&resp.TotalAmount,
		&resp.DeliveryFee,
		&resp.FinalAmount,
		&resp.DeliveryAddress,
		&resp.DeliveryPincode,
		&resp.PatientPhone,
		&resp.SpecialInstructions,
		&resp.PharmacyNotes,
		&resp.RejectionReason,
		&resp.Version,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&acceptedAt,
		&expectedDeliveryTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.PrescriptionID, err = kernel.UUIDFromBytes(prescriptionID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.PatientID, err = kernel.UUIDFromBytes(patientID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if pharmacyID.Valid {
		pid, idErr := kernel.UUIDFromBytes(pharmacyID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.PharmacyID = &pid
	}
	if acceptedAt.Valid {
		t := acceptedAt.Time
		resp.AcceptedAt = &t
	}
	if expectedDeliveryTime.Valid {
		t := expectedDeliveryTime.Time
		resp.ExpectedDeliveryTime = &t
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			medicine_name,
			dosage,
			quantity,
			status
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		if err = rows.Scan(&item.MedicineName, &item.Dosage, &item.Quantity, &item.Status); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
