package order

import (
	"fmt"

	"mediorder/internal/pkg/errs"
)

// Type distinguishes home delivery from in-store pickup.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeDelivery orders are delivered to the patient's address.
	TypeDelivery

	// TypePickup orders are collected by the patient at the pharmacy.
	TypePickup
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "UNKNOWN",
		TypeDelivery: "DELIVERY",
		TypePickup:   "PICKUP",
	}
}

// ParseType converts the wire representation ("DELIVERY"/"PICKUP") into a Type.
func ParseType(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s && t != TypeUnknown {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"orderType", fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks that the Type is one of the defined values.
func (t Type) Validate() error {
	if t != TypeDelivery && t != TypePickup {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderType", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the wire representation of the order type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
