package commands

import (
	"errors"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/order"
	"mediorder/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrDeliveryPincodeIsRequired = errors.New("delivery pincode is required")
)

// CreateOrderCommand represents a request to create a new medicine order from
// a prescription. Line items and pricing are derived from the prescription by
// the handler; the command only carries what the caller knows.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(
//	    orderID, prescriptionID, patientID,
//	    order.TypeDelivery, "12 MG Road", "560001", "call on arrival",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, geocoder)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	prescriptionID      kernel.UUID
	patientID           kernel.UUID
	orderType           order.Type
	deliveryAddress     string
	deliveryPincode     string
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new medicine order.
// Validates that all ids are valid, the order type is known, and the delivery
// address and pincode are not empty. Special instructions are optional.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	prescriptionID kernel.UUID,
	patientID kernel.UUID,
	orderType order.Type,
	deliveryAddress string,
	deliveryPincode string,
	specialInstructions string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPrescriptionID(prescriptionID),
		cmd.setPatientID(patientID),
		cmd.setOrderType(orderType),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setDeliveryPincode(deliveryPincode),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PrescriptionID returns the prescription the order is built from.
func (c CreateOrderCommand) PrescriptionID() kernel.UUID {
	return c.prescriptionID
}

// PatientID returns the patient the order belongs to.
func (c CreateOrderCommand) PatientID() kernel.UUID {
	return c.patientID
}

// OrderType returns whether the order is for delivery or pickup.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// DeliveryAddress returns the delivery destination address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryPincode returns the delivery postal code.
func (c CreateOrderCommand) DeliveryPincode() string {
	return c.deliveryPincode
}

// SpecialInstructions returns optional delivery instructions.
func (c CreateOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setPrescriptionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.prescriptionID = id
	return nil
}

func (c *CreateOrderCommand) setPatientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.patientID = id
	return nil
}

func (c *CreateOrderCommand) setOrderType(t order.Type) error {
	if err := t.Validate(); err != nil {
		return err
	}

	c.orderType = t
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setDeliveryPincode(pincode string) error {
	if pincode == "" {
		return ErrDeliveryPincodeIsRequired
	}

	c.deliveryPincode = pincode
	return nil
}
