package order

import (
	"errors"
	"fmt"

	"mediorder/internal/pkg/errs"
	"mediorder/internal/pkg/guard"
)

// ItemStatus tracks fulfillment of a single order line at the pharmacy.
type ItemStatus int

const (
	// ItemUnknown represents an invalid or undefined item status.
	ItemUnknown ItemStatus = iota

	// ItemPending is the default status for a freshly created item.
	ItemPending

	// ItemFulfilled means the pharmacy will provide the requested quantity.
	ItemFulfilled

	// ItemUnavailable means the pharmacy cannot provide the medicine.
	ItemUnavailable
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemUnknown:     "UNKNOWN",
		ItemPending:     "PENDING",
		ItemFulfilled:   "FULFILLED",
		ItemUnavailable: "UNAVAILABLE",
	}
}

// ParseItemStatus converts the wire representation into an ItemStatus.
func ParseItemStatus(s string) (ItemStatus, error) {
	for status, str := range getItemStatusStrings() {
		if str == s && status != ItemUnknown {
			return status, nil
		}
	}
	return ItemUnknown, errs.NewValueIsInvalidErrorWithCause(
		"itemStatus", fmt.Errorf("%q is not a valid item status", s))
}

// Validate checks that the ItemStatus is one of the defined values.
func (s ItemStatus) Validate() error {
	if s != ItemPending && s != ItemFulfilled && s != ItemUnavailable {
		return errs.NewValueIsInvalidErrorWithCause(
			"itemStatus", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// String returns the wire representation of the item status.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a single medicine line of an order. Values are copied from the
// prescription line at order-creation time: the prescription is a
// point-in-time source, not a live reference. Items are owned exclusively
// by their order and never shared.
type Item struct {
	medicineName string
	dosage       string
	quantity     int
	status       ItemStatus

	guard guard.ConstructorGuard
}

// NewItem creates an order item in ItemPending status.
// Medicine name and dosage are required; quantity must be positive.
func NewItem(medicineName string, dosage string, quantity int) (Item, error) {
	item := Item{
		status: ItemPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMedicineName(medicineName),
		item.setDosage(dosage),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence, including its status.
func RestoreItem(medicineName string, dosage string, quantity int, status ItemStatus) (Item, error) {
	item, err := NewItem(medicineName, dosage, quantity)
	if err != nil {
		return Item{}, err
	}

	if err = status.Validate(); err != nil {
		return Item{}, err
	}
	item.status = status

	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MedicineName returns the medicine name copied from the prescription line.
func (i Item) MedicineName() string {
	return i.medicineName
}

// Dosage returns the dosage copied from the prescription line, e.g. "500mg".
func (i Item) Dosage() string {
	return i.dosage
}

// Quantity returns the requested quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Status returns the fulfillment status of the item.
func (i Item) Status() ItemStatus {
	return i.status
}

func (i *Item) setMedicineName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("medicineName")
	}
	i.medicineName = name
	return nil
}

func (i *Item) setDosage(dosage string) error {
	if dosage == "" {
		return errs.NewValueIsRequiredError("dosage")
	}
	i.dosage = dosage
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
