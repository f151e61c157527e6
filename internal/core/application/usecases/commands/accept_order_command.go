package commands

import (
	"errors"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a pharmacy accepting an order assigned to it.
// Optional notes from the pharmacy are recorded on the order.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	pharmacyID    kernel.UUID
	pharmacyNotes string

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a pharmacy to accept an order.
// Validates that both ids are valid; notes are optional.
func NewAcceptOrderCommand(orderID kernel.UUID, pharmacyID kernel.UUID, pharmacyNotes string) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		pharmacyNotes: pharmacyNotes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPharmacyID(pharmacyID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOrderCommandIsNotConstructed if validation fails.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the order being accepted.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PharmacyID returns the pharmacy claiming the order.
func (c AcceptOrderCommand) PharmacyID() kernel.UUID {
	return c.pharmacyID
}

// PharmacyNotes returns optional notes recorded by the pharmacy.
func (c AcceptOrderCommand) PharmacyNotes() string {
	return c.pharmacyNotes
}

func (c *AcceptOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AcceptOrderCommand) setPharmacyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.pharmacyID = id
	return nil
}
