package valueobject

import (
	"github.com/google/uuid"

	"github.com/erp/ordertaking/domain/shared/constraint"
)

const identifierMaxLen = 50

// OrderID identifies an order. Non-empty, at most 50 characters.
type OrderID struct {
	value string
}

func wrapOrderID(v string) OrderID {
	return OrderID{value: v}
}

// NewOrderID creates an OrderID from raw input.
func NewOrderID(field, raw string) (OrderID, error) {
	return constraint.String(field, wrapOrderID, identifierMaxLen, raw)
}

// GenerateOrderID mints a fresh UUID-backed OrderID. The generated
// value always satisfies the OrderID invariant.
func GenerateOrderID() OrderID {
	return OrderID{value: uuid.NewString()}
}

// Value returns the underlying string.
func (id OrderID) Value() string {
	return id.value
}

// String implements fmt.Stringer.
func (id OrderID) String() string {
	return id.value
}

// OrderLineID identifies a line within an order. Non-empty, at most 50
// characters.
type OrderLineID struct {
	value string
}

func wrapOrderLineID(v string) OrderLineID {
	return OrderLineID{value: v}
}

// NewOrderLineID creates an OrderLineID from raw input.
func NewOrderLineID(field, raw string) (OrderLineID, error) {
	return constraint.String(field, wrapOrderLineID, identifierMaxLen, raw)
}

// GenerateOrderLineID mints a fresh UUID-backed OrderLineID.
func GenerateOrderLineID() OrderLineID {
	return OrderLineID{value: uuid.NewString()}
}

// Value returns the underlying string.
func (id OrderLineID) Value() string {
	return id.value
}

// String implements fmt.Stringer.
func (id OrderLineID) String() string {
	return id.value
}
