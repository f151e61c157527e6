package commands

import (
	"context"
	"log/slog"
	"time"

	"mediorder/internal/core/ports"
)

// RejectOrderCommandHandler handles a pharmacy declining an assigned order.
// After recording the rejection it immediately tries to bind a different
// pharmacy; when that attempt fails the order stays rejected and the failure
// is logged, leaving the periodic reassignment job to retry.
type RejectOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
	geocoder   ports.Geocoder
	logger     *slog.Logger
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(
	uowFactory AssignmentUoWFactory,
	geocoder ports.Geocoder,
	logger *slog.Logger,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		logger:     logger,
	}
}

// Handle processes the rejection command.
// Fails with order.ErrPharmacyNotAuthorized when the pharmacy does not own
// the order. Reassignment failure is not an error for the caller: the order
// is persisted in rejected status and retried later.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	if err = aggregate.Reject(cmd.PharmacyID(), cmd.RejectionReason(), now); err != nil {
		return err
	}

	if assignErr := assignNearestPharmacy(
		ctx, h.geocoder, uow.PharmacyRepository(), aggregate, aggregate.DeliveryPincode(), now,
	); assignErr != nil {
		h.logger.WarnContext(ctx, "reassignment after rejection failed",
			"order_id", aggregate.ID().String(),
			"error", assignErr,
		)
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
