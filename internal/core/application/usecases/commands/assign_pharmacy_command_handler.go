package commands

import (
	"context"
	"time"

	"mediorder/internal/core/ports"
)

// AssignPharmacyCommandHandler binds a pharmacy to an order that has none.
// Geocodes the order's delivery pincode, prefers the nearest pharmacy within
// the assignment radius, and falls back to any registered pharmacy. Fails
// with ErrNoPharmacyAvailable only when the directory is empty.
//
// Example:
//
//	handler := NewAssignPharmacyCommandHandler(uowFactory, geocoder)
//	cmd, _ := NewAssignPharmacyCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoPharmacyAvailable) {
//	    log.Println("no pharmacies registered yet")
//	}
type AssignPharmacyCommandHandler struct {
	uowFactory AssignmentUoWFactory
	geocoder   ports.Geocoder
}

// NewAssignPharmacyCommandHandler creates a handler for pharmacy assignment.
func NewAssignPharmacyCommandHandler(
	uowFactory AssignmentUoWFactory,
	geocoder ports.Geocoder,
) AssignPharmacyCommandHandler {
	return AssignPharmacyCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
	}
}

// Handle processes the pharmacy assignment command.
// Loads the order, performs the proximity match against the full pharmacy
// directory, and persists the assignment within a single transaction.
func (h AssignPharmacyCommandHandler) Handle(ctx context.Context, cmd AssignPharmacyCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = assignNearestPharmacy(
		ctx, h.geocoder, uow.PharmacyRepository(), aggregate, aggregate.DeliveryPincode(), now,
	); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
