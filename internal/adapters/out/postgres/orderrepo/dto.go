// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their wire strings so the table stays readable and
// stable across enum reordering. Timestamps are owned by the domain, not by
// GORM's auto-tracking.
type OrderDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber          string     `gorm:"type:varchar(64);uniqueIndex"`
	PrescriptionID       uuid.UUID  `gorm:"type:uuid;index"`
	PatientID            uuid.UUID  `gorm:"type:uuid;index"`
	PharmacyID           *uuid.UUID `gorm:"type:uuid;index"`
	Status               string     `gorm:"type:varchar(32);index"`
	OrderType            string     `gorm:"type:varchar(16)"`
	TotalAmount          float64
	DeliveryFee          float64
	FinalAmount          float64
	DeliveryAddress      string
	DeliveryPincode      string `gorm:"type:varchar(16);index"`
	PatientPhone         string
	SpecialInstructions  string
	PharmacyNotes        string
	RejectionReason      string
	Version              int64
	CreatedAt            time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime:false"`
	AcceptedAt           *time.Time
	ExpectedDeliveryTime *time.Time
	Items                []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one medicine line of an order.
// Position preserves the prescription's line order on rehydration.
type OrderItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	Position     int
	MedicineName string
	Dosage       string
	Quantity     int
	Status       string `gorm:"type:varchar(16)"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Item rows get fresh identities each write; they have no identity of their
// own in the domain model.
func fromDomain(aggregate *order.Order) OrderDTO {
	var pharmacyID *uuid.UUID
	if id := aggregate.Pharmacy(); id != nil {
		raw := id.Bytes()
		pharmacyID = &raw
	}

	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:           uuid.New(),
			OrderID:      orderID,
			Position:     i,
			MedicineName: item.MedicineName(),
			Dosage:       item.Dosage(),
			Quantity:     item.Quantity(),
			Status:       item.Status().String(),
		})
	}

	return OrderDTO{
		ID:                   orderID,
		OrderNumber:          aggregate.OrderNumber().String(),
		PrescriptionID:       aggregate.PrescriptionID().Bytes(),
		PatientID:            aggregate.PatientID().Bytes(),
		PharmacyID:           pharmacyID,
		Status:               aggregate.Status().String(),
		OrderType:            aggregate.OrderType().String(),
		TotalAmount:          aggregate.TotalAmount(),
		DeliveryFee:          aggregate.DeliveryFee(),
		FinalAmount:          aggregate.FinalAmount(),
		DeliveryAddress:      aggregate.DeliveryAddress(),
		DeliveryPincode:      aggregate.DeliveryPincode(),
		PatientPhone:         aggregate.PatientPhone(),
		SpecialInstructions:  aggregate.SpecialInstructions(),
		PharmacyNotes:        aggregate.PharmacyNotes(),
		RejectionReason:      aggregate.RejectionReason(),
		Version:              aggregate.Version(),
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
		AcceptedAt:           aggregate.AcceptedAt(),
		ExpectedDeliveryTime: aggregate.ExpectedDeliveryTime(),
		Items:                items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, items and pharmacy
// assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderNumber, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	prescriptionID, err := kernel.UUIDFromBytes(dto.PrescriptionID[:])
	if err != nil {
		return nil, err
	}

	patientID, err := kernel.UUIDFromBytes(dto.PatientID[:])
	if err != nil {
		return nil, err
	}

	var pharmacyID *kernel.UUID
	if dto.PharmacyID != nil {
		pID, pharmacyErr := kernel.UUIDFromBytes((*dto.PharmacyID)[:])
		if pharmacyErr != nil {
			return nil, pharmacyErr
		}
		pharmacyID = &pID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	orderType, err := order.ParseType(dto.OrderType)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemStatus, itemErr := order.ParseItemStatus(itemDTO.Status)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(itemDTO.MedicineName, itemDTO.Dosage, itemDTO.Quantity, itemStatus)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                   id,
		OrderNumber:          orderNumber,
		PrescriptionID:       prescriptionID,
		PatientID:            patientID,
		PharmacyID:           pharmacyID,
		Status:               status,
		OrderType:            orderType,
		TotalAmount:          dto.TotalAmount,
		DeliveryFee:          dto.DeliveryFee,
		DeliveryAddress:      dto.DeliveryAddress,
		DeliveryPincode:      dto.DeliveryPincode,
		PatientPhone:         dto.PatientPhone,
		SpecialInstructions:  dto.SpecialInstructions,
		PharmacyNotes:        dto.PharmacyNotes,
		RejectionReason:      dto.RejectionReason,
		Items:                items,
		Version:              dto.Version,
		CreatedAt:            dto.CreatedAt,
		UpdatedAt:            dto.UpdatedAt,
		AcceptedAt:           dto.AcceptedAt,
		ExpectedDeliveryTime: dto.ExpectedDeliveryTime,
	})
}
