package commands

import (
	"context"
	"time"
)

// AcceptOrderCommandHandler handles a pharmacy accepting an assigned order.
// Ownership is enforced by the aggregate: only the pharmacy the order is
// assigned to may accept it. The repository's optimistic concurrency check
// guarantees at most one accept wins when two calls race.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
// Fails with order.ErrPharmacyNotAuthorized when the pharmacy does not own
// the order and with ports.ErrConcurrencyConflict when a concurrent mutation
// won the race.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	if err = aggregate.Accept(cmd.PharmacyID(), cmd.PharmacyNotes(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
