package commands

import (
	"errors"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/pkg/guard"
)

var ErrAssignPharmacyCommandIsNotConstructed = errors.New(
	"AssignPharmacyCommand must be created via NewAssignPharmacyCommand constructor",
)

// AssignPharmacyCommand triggers pharmacy assignment for a single order.
// Used both for orders that were created without a reachable pharmacy and for
// rejected orders that need a new one.
type AssignPharmacyCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignPharmacyCommand creates a command to bind a pharmacy to the order.
func NewAssignPharmacyCommand(orderID kernel.UUID) (AssignPharmacyCommand, error) {
	cmd := AssignPharmacyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AssignPharmacyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPharmacyCommandIsNotConstructed if validation fails.
func (c AssignPharmacyCommand) Validate() error {
	return c.guard.Validate(ErrAssignPharmacyCommandIsNotConstructed)
}

// OrderID returns the order to assign a pharmacy to.
func (c AssignPharmacyCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AssignPharmacyCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}
