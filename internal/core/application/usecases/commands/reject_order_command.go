package commands

import (
	"errors"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/pkg/guard"
)

var (
	ErrRejectOrderCommandIsNotConstructed = errors.New(
		"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
	)
	ErrRejectionReasonIsRequired = errors.New("rejection reason is required")
)

// RejectOrderCommand represents a pharmacy declining an order assigned to it.
// A reason is mandatory so the patient-facing status stays explainable.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	pharmacyID      kernel.UUID
	rejectionReason string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command for a pharmacy to reject an order.
// Validates that both ids are valid and a non-empty reason is given.
func NewRejectOrderCommand(orderID kernel.UUID, pharmacyID kernel.UUID, rejectionReason string) (RejectOrderCommand, error) {
	cmd := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPharmacyID(pharmacyID),
		cmd.setRejectionReason(rejectionReason),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectOrderCommandIsNotConstructed if validation fails.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the order being rejected.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PharmacyID returns the pharmacy declining the order.
func (c RejectOrderCommand) PharmacyID() kernel.UUID {
	return c.pharmacyID
}

// RejectionReason returns why the pharmacy declined.
func (c RejectOrderCommand) RejectionReason() string {
	return c.rejectionReason
}

func (c *RejectOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *RejectOrderCommand) setPharmacyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.pharmacyID = id
	return nil
}

func (c *RejectOrderCommand) setRejectionReason(reason string) error {
	if reason == "" {
		return ErrRejectionReasonIsRequired
	}

	c.rejectionReason = reason
	return nil
}
