package order

import (
	"fmt"

	"mediorder/internal/pkg/errs"
)

// Status represents the lifecycle state of a medicine order.
// It implements a state machine with an explicit transition table so that
// every status change is validated in one place.
//
// Lifecycle:
//
//	Pending ──> PharmacyAssigned ──> Accepted ──> Preparing ──> ReadyForPickup ──┬──> OutForDelivery ──> Delivered
//	                 │    ^                                                      └──> Delivered (pickup orders)
//	                 v    │ (reassignment)
//	              Rejected
//
// Cancelled is reachable from every non-terminal state. Delivered, Cancelled
// and Refunded are terminal; Refunded is only reachable through the
// privileged force-transition path used for administrative corrections.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the order exists but no pharmacy is assigned.
	Pending

	// PharmacyAssigned means a pharmacy was selected and must accept or reject.
	PharmacyAssigned

	// Accepted means the assigned pharmacy confirmed the order.
	Accepted

	// Rejected means the assigned pharmacy declined; the order awaits reassignment.
	Rejected

	// Preparing means the pharmacy is preparing the medicines.
	Preparing

	// ReadyForPickup means the medicines are packed and await handover.
	ReadyForPickup

	// OutForDelivery means a delivery partner has picked the order up.
	OutForDelivery

	// Delivered means the order reached the patient. Terminal.
	Delivered

	// Cancelled means the order was cancelled by the patient or the system. Terminal.
	Cancelled

	// Refunded means the order amount was returned to the patient. Terminal.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		Pending:          "PENDING",
		PharmacyAssigned: "PHARMACY_ASSIGNED",
		Accepted:         "ACCEPTED",
		Rejected:         "REJECTED",
		Preparing:        "PREPARING",
		ReadyForPickup:   "READY_FOR_PICKUP",
		OutForDelivery:   "OUT_FOR_DELIVERY",
		Delivered:        "DELIVERED",
		Cancelled:        "CANCELLED",
		Refunded:         "REFUNDED",
	}
}

// transitionTable maps each status to the set of statuses it may move to.
// Terminal statuses map to an empty set.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:          {PharmacyAssigned, Cancelled},
		PharmacyAssigned: {PharmacyAssigned, Accepted, Rejected, Cancelled},
		Accepted:         {Preparing, Cancelled},
		Rejected:         {PharmacyAssigned, Cancelled},
		Preparing:        {ReadyForPickup, Cancelled},
		ReadyForPickup:   {OutForDelivery, Delivered, Cancelled},
		OutForDelivery:   {Delivered, Cancelled},
		Delivered:        {},
		Cancelled:        {},
		Refunded:         {},
	}
}

// ParseStatus converts the wire representation (e.g. "PHARMACY_ASSIGNED")
// into a Status. Returns an error for unrecognized values.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := transitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are expected.
func (s Status) IsTerminal() bool {
	next, ok := transitionTable()[s]
	return ok && len(next) == 0
}

// ValidateTransition checks that moving from s to next is allowed by the
// transition table without performing the transition.
func (s Status) ValidateTransition(next Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	for _, allowed := range transitionTable()[s] {
		if allowed == next {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("transition from %s to %s is not allowed", s, next))
}

// ValidateCanHavePharmacy validates consistency between the status and the
// presence of a pharmacy assignment.
//
// Rules:
//   - Pending and Rejected orders must not have a pharmacy
//   - PharmacyAssigned through Delivered orders must have one
//   - Cancelled and Refunded orders may or may not, depending on when they
//     left the normal flow
func (s Status) ValidateCanHavePharmacy(hasPharmacy bool) error {
	switch s {
	case Pending, Rejected:
		if hasPharmacy {
			return errs.NewValueIsInvalidErrorWithCause(
				"status",
				fmt.Errorf("%s order must not have a pharmacy assigned", s))
		}
	case PharmacyAssigned, Accepted, Preparing, ReadyForPickup, OutForDelivery, Delivered:
		if !hasPharmacy {
			return errs.NewValueIsInvalidErrorWithCause(
				"status",
				fmt.Errorf("%s order must have a pharmacy assigned", s))
		}
	case Cancelled, Refunded, Unknown:
	}

	return nil
}
