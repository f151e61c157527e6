package order

import (
	"errors"
	"time"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/pkg/errs"
)

// Pricing policy constants applied at order creation. The creation-time
// delivery fee is a flat baseline, independent of distance; distance-based
// fees are quoted separately by the pharmacy matcher.
const (
	// ItemBaseRate is the per-item base rate used for the creation-time total.
	ItemBaseRate = 50.0

	// BaseDeliveryFee is the flat delivery fee applied at creation time.
	BaseDeliveryFee = 20.0

	// defaultDeliveryWindow is the expected delivery time applied on acceptance.
	defaultDeliveryWindow = 2 * time.Hour
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrPharmacyNotAuthorized is returned when a pharmacy attempts to accept
	// or reject an order that is not assigned to it.
	ErrPharmacyNotAuthorized = errors.New("pharmacy is not authorized to act on this order")
)

// Order is the aggregate root of the medicine order fulfillment domain.
// It owns the order's lifecycle status, its pricing, the pharmacy assignment
// and the medicine line items copied from the prescription.
//
// Invariants:
//   - finalAmount always equals totalAmount + deliveryFee
//   - the order number is immutable once assigned at creation
//   - a pharmacy is assigned iff the status requires one (see
//     Status.ValidateCanHavePharmacy)
//   - status transitions follow the transition table; only ForceTransitionTo
//     bypasses it
//   - at least one item, each copied from a prescription line
//
// The version field supports optimistic concurrency: the persistence adapter
// performs a compare-and-set against it so that two pharmacies racing to
// accept the same order cannot both succeed.
type Order struct {
	id          kernel.UUID
	orderNumber kernel.OrderNumber

	prescriptionID kernel.UUID
	patientID      kernel.UUID
	pharmacyID     *kernel.UUID

	status    Status
	orderType Type

	totalAmount float64
	deliveryFee float64
	finalAmount float64

	deliveryAddress     string
	deliveryPincode     string
	patientPhone        string
	specialInstructions string
	pharmacyNotes       string
	rejectionReason     string

	items []Item

	version int64

	createdAt            time.Time
	updatedAt            time.Time
	acceptedAt           *time.Time
	expectedDeliveryTime *time.Time

	isConstructed bool
}

// NewOrder creates an order in Pending status with no pharmacy assigned.
// Items must contain at least one valid line; pricing is computed from the
// item count (ItemBaseRate per item) plus the flat BaseDeliveryFee.
func NewOrder(
	id kernel.UUID,
	orderNumber kernel.OrderNumber,
	prescriptionID kernel.UUID,
	patientID kernel.UUID,
	orderType Type,
	deliveryAddress string,
	deliveryPincode string,
	patientPhone string,
	specialInstructions string,
	items []Item,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:              Pending,
		specialInstructions: specialInstructions,
		patientPhone:        patientPhone,
		createdAt:           now,
		updatedAt:           now,
		version:             1,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setPrescriptionID(prescriptionID),
		o.setPatientID(patientID),
		o.setOrderType(orderType),
		o.setDeliveryAddress(deliveryAddress),
		o.setDeliveryPincode(deliveryPincode),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.totalAmount = ItemBaseRate * float64(len(o.items))
	o.deliveryFee = BaseDeliveryFee
	o.recalcFinalAmount()

	return o, nil
}

// RestoreOrderParams carries the persisted state of an order for rehydration.
type RestoreOrderParams struct {
	ID                   kernel.UUID
	OrderNumber          kernel.OrderNumber
	PrescriptionID       kernel.UUID
	PatientID            kernel.UUID
	PharmacyID           *kernel.UUID
	Status               Status
	OrderType            Type
	TotalAmount          float64
	DeliveryFee          float64
	DeliveryAddress      string
	DeliveryPincode      string
	PatientPhone         string
	SpecialInstructions  string
	PharmacyNotes        string
	RejectionReason      string
	Items                []Item
	Version              int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
	AcceptedAt           *time.Time
	ExpectedDeliveryTime *time.Time
}

// RestoreOrder reconstructs an order aggregate from persistence, revalidating
// the status/pharmacy consistency invariant.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o := &Order{
		status:               params.Status,
		specialInstructions:  params.SpecialInstructions,
		patientPhone:         params.PatientPhone,
		pharmacyNotes:        params.PharmacyNotes,
		rejectionReason:      params.RejectionReason,
		version:              params.Version,
		createdAt:            params.CreatedAt,
		updatedAt:            params.UpdatedAt,
		acceptedAt:           params.AcceptedAt,
		expectedDeliveryTime: params.ExpectedDeliveryTime,
		isConstructed:        true,
	}

	if err := errors.Join(
		o.setID(params.ID),
		o.setOrderNumber(params.OrderNumber),
		o.setPrescriptionID(params.PrescriptionID),
		o.setPatientID(params.PatientID),
		o.setOrderType(params.OrderType),
		o.setDeliveryAddress(params.DeliveryAddress),
		o.setDeliveryPincode(params.DeliveryPincode),
		o.setItems(params.Items),
		params.Status.Validate(),
		params.Status.ValidateCanHavePharmacy(params.PharmacyID != nil),
	); err != nil {
		return nil, err
	}

	if params.PharmacyID != nil {
		if err := params.PharmacyID.Validate(); err != nil {
			return nil, err
		}
		pharmacyID := *params.PharmacyID
		o.pharmacyID = &pharmacyID
	}

	o.totalAmount = params.TotalAmount
	o.deliveryFee = params.DeliveryFee
	o.recalcFinalAmount()

	return o, nil
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the immutable human-readable order number.
func (o *Order) OrderNumber() kernel.OrderNumber {
	return o.orderNumber
}

// PrescriptionID returns the prescription this order was created from.
func (o *Order) PrescriptionID() kernel.UUID {
	return o.prescriptionID
}

// PatientID returns the ordering patient.
func (o *Order) PatientID() kernel.UUID {
	return o.patientID
}

// Pharmacy returns the assigned pharmacy's ID, or nil when unassigned.
func (o *Order) Pharmacy() *kernel.UUID {
	return o.pharmacyID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// OrderType returns whether the order is for delivery or pickup.
func (o *Order) OrderType() Type {
	return o.orderType
}

// TotalAmount returns the medicines total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// DeliveryFee returns the delivery fee component.
func (o *Order) DeliveryFee() float64 {
	return o.deliveryFee
}

// FinalAmount returns totalAmount + deliveryFee.
func (o *Order) FinalAmount() float64 {
	return o.finalAmount
}

// DeliveryAddress returns the delivery address text.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryPincode returns the delivery postal code used for pharmacy matching.
func (o *Order) DeliveryPincode() string {
	return o.deliveryPincode
}

// PatientPhone returns the patient's contact number captured at creation.
func (o *Order) PatientPhone() string {
	return o.patientPhone
}

// SpecialInstructions returns the patient's delivery instructions.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// PharmacyNotes returns the notes left by the pharmacy.
func (o *Order) PharmacyNotes() string {
	return o.pharmacyNotes
}

// RejectionReason returns the reason recorded on the last rejection.
func (o *Order) RejectionReason() string {
	return o.rejectionReason
}

// Items returns a copy of the order's medicine lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Version returns the optimistic concurrency token.
func (o *Order) Version() int64 {
	return o.version
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AcceptedAt returns when the pharmacy accepted the order, or nil.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// ExpectedDeliveryTime returns the promised delivery time, or nil.
func (o *Order) ExpectedDeliveryTime() *time.Time {
	return o.expectedDeliveryTime
}

// AssignPharmacy binds the order to a pharmacy and moves it to
// PharmacyAssigned. Allowed from Pending, Rejected, and PharmacyAssigned
// (reassignment).
func (o *Order) AssignPharmacy(pharmacyID kernel.UUID, now time.Time) error {
	if err := pharmacyID.Validate(); err != nil {
		return err
	}

	if err := o.status.ValidateTransition(PharmacyAssigned); err != nil {
		return err
	}

	o.status = PharmacyAssigned
	o.pharmacyID = &pharmacyID
	o.touch(now)
	return nil
}

// Accept records the assigned pharmacy's acceptance. The calling pharmacy
// must own the assignment, otherwise ErrPharmacyNotAuthorized is returned.
// On success the order moves to Accepted, acceptedAt is stamped and the
// expected delivery time is set to now plus the default delivery window.
func (o *Order) Accept(pharmacyID kernel.UUID, notes string, now time.Time) error {
	if err := o.validateOwnership(pharmacyID); err != nil {
		return err
	}

	if err := o.status.ValidateTransition(Accepted); err != nil {
		return err
	}

	o.status = Accepted
	o.pharmacyNotes = notes
	acceptedAt := now
	o.acceptedAt = &acceptedAt
	expected := now.Add(defaultDeliveryWindow)
	o.expectedDeliveryTime = &expected
	o.touch(now)
	return nil
}

// Reject records the assigned pharmacy's rejection with a mandatory reason
// and clears the pharmacy assignment. The order remains Rejected until a
// reassignment moves it back to PharmacyAssigned.
func (o *Order) Reject(pharmacyID kernel.UUID, reason string, now time.Time) error {
	if err := o.validateOwnership(pharmacyID); err != nil {
		return err
	}

	if reason == "" {
		return errs.NewValueIsRequiredError("rejectionReason")
	}

	if err := o.status.ValidateTransition(Rejected); err != nil {
		return err
	}

	o.status = Rejected
	o.rejectionReason = reason
	o.pharmacyID = nil
	o.touch(now)
	return nil
}

// TransitionTo moves the order to the given status, enforcing the transition
// table and the status/pharmacy consistency invariant.
func (o *Order) TransitionTo(next Status, now time.Time) error {
	if err := o.status.ValidateTransition(next); err != nil {
		return err
	}

	if err := next.ValidateCanHavePharmacy(o.pharmacyID != nil); err != nil {
		return err
	}

	o.status = next
	o.touch(now)
	return nil
}

// ForceTransitionTo overwrites the status without consulting the transition
// table. It exists solely for privileged administrative corrections; regular
// callers must use TransitionTo.
func (o *Order) ForceTransitionTo(next Status, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}

	o.status = next
	o.touch(now)
	return nil
}

// SetDeliveryFee replaces the delivery fee and recomputes the final amount.
func (o *Order) SetDeliveryFee(fee float64, now time.Time) error {
	if fee < 0 {
		return errs.NewValueIsOutOfRangeError("deliveryFee", fee, 0, "unbounded")
	}

	o.deliveryFee = fee
	o.recalcFinalAmount()
	o.touch(now)
	return nil
}

func (o *Order) validateOwnership(pharmacyID kernel.UUID) error {
	if err := pharmacyID.Validate(); err != nil {
		return err
	}

	if o.pharmacyID == nil || !o.pharmacyID.IsEqual(pharmacyID) {
		return ErrPharmacyNotAuthorized
	}

	return nil
}

func (o *Order) recalcFinalAmount() {
	o.finalAmount = o.totalAmount + o.deliveryFee
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.orderNumber = number
	return nil
}

func (o *Order) setPrescriptionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("prescriptionId", err)
	}
	o.prescriptionID = id
	return nil
}

func (o *Order) setPatientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("patientId", err)
	}
	o.patientID = id
	return nil
}

func (o *Order) setOrderType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.orderType = t
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setDeliveryPincode(pincode string) error {
	if pincode == "" {
		return errs.NewValueIsRequiredError("deliveryPincode")
	}
	o.deliveryPincode = pincode
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
