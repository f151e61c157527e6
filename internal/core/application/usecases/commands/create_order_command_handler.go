package commands

import (
	"context"
	"time"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/order"
	"mediorder/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies the prescription is usable, copies its medicine lines into order
// items, computes pricing and attempts pharmacy auto-assignment. Assignment
// trouble never fails creation: the order is persisted in pending status and
// picked up later by the reassignment job.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	geocoder   ports.Geocoder
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence and a
// Geocoder for resolving the delivery pincode during auto-assignment.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	geocoder ports.Geocoder,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
	}
}

// Handle processes the order creation command.
// Fails with the prescription's usability error when it is inactive or
// expired, and with errs.ErrObjectNotFound when the prescription or patient
// does not exist. Auto-assignment failures are swallowed.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	prescriptionAggregate, err := uow.PrescriptionRepository().Get(ctx, cmd.PrescriptionID())
	if err != nil {
		return err
	}
	if err = prescriptionAggregate.EnsureUsable(now); err != nil {
		return err
	}

	patientRecord, err := uow.PatientRepository().Get(ctx, cmd.PatientID())
	if err != nil {
		return err
	}

	items := make([]order.Item, 0, len(prescriptionAggregate.Medicines()))
	for _, line := range prescriptionAggregate.Medicines() {
		item, itemErr := order.NewItem(line.Name, line.Dosage, line.Quantity)
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		kernel.GenerateOrderNumber(now),
		cmd.PrescriptionID(),
		cmd.PatientID(),
		cmd.OrderType(),
		cmd.DeliveryAddress(),
		cmd.DeliveryPincode(),
		patientRecord.Phone(),
		cmd.SpecialInstructions(),
		items,
		now,
	)
	if err != nil {
		return err
	}

	// Best effort: the order stays pending when no pharmacy can be bound.
	_ = assignNearestPharmacy(ctx, h.geocoder, uow.PharmacyRepository(), aggregate, cmd.DeliveryPincode(), now)

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
