package kernel

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"mediorder/internal/pkg/errs"

	"github.com/google/uuid"
)

// orderNumberPrefix precedes every generated order number.
const orderNumberPrefix = "ORD"

// ErrOrderNumberIsRequired is returned when validating an empty order number.
var ErrOrderNumberIsRequired = errs.NewValueIsRequiredError(
	"order number must be created via GenerateOrderNumber or OrderNumberFromString")

// OrderNumber is the human-readable, immutable identifier of a medicine order.
// The format is "ORD<unix-millis>-<6 hex chars>", e.g. "ORD1724700000000-5F3A2B".
// The suffix comes from a freshly generated UUID rather than the global
// pseudo-random source, so numbers stay collision-resistant even when the
// wall clock repeats.
type OrderNumber struct {
	value string
}

// GenerateOrderNumber creates a new order number stamped with the given time.
func GenerateOrderNumber(now time.Time) OrderNumber {
	suffix := uuid.New()
	return OrderNumber{
		value: fmt.Sprintf("%s%d-%s",
			orderNumberPrefix,
			now.UnixMilli(),
			strings.ToUpper(hex.EncodeToString(suffix[:3])),
		),
	}
}

// OrderNumberFromString reconstructs an order number from persistence.
// Returns an error for an empty value.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if s == "" {
		return OrderNumber{}, ErrOrderNumberIsRequired
	}
	return OrderNumber{value: s}, nil
}

// String returns the order number text.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate returns ErrOrderNumberIsRequired for the zero value.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsRequired
	}
	return nil
}
