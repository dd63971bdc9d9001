package valueobject

import (
	"github.com/shopspring/decimal"

	"github.com/erp/ordertaking/domain/shared"
	"github.com/erp/ordertaking/domain/shared/constraint"
)

const (
	unitQuantityMin = 1
	unitQuantityMax = 1000
)

var (
	kilogramQuantityMin = decimal.NewFromFloat(0.05)
	kilogramQuantityMax = decimal.NewFromInt(100)
)

// OrderQuantity is the closed choice of quantity kinds: a UnitQuantity
// for widgets or a KilogramQuantity for gizmos. Which variant applies
// is decided by the product being quantified, not by the shape of the
// raw number. The unexported marker method seals the interface.
type OrderQuantity interface {
	orderQuantity()
	// Amount unwraps either variant to a plain decimal for arithmetic.
	Amount() decimal.Decimal
}

// NewOrderQuantity constructs the quantity variant matching the given
// product code. A widget quantity is a whole unit count: fractional
// input is truncated toward zero before validation (2.9 becomes 2
// units; truncation, not rounding). A gizmo quantity is validated
// directly as a weight in kilograms.
func NewOrderQuantity(field string, code ProductCode, qty decimal.Decimal) (OrderQuantity, error) {
	switch code.(type) {
	case WidgetCode:
		// Bounds are checked in the decimal domain before the int
		// conversion, so extreme inputs cannot wrap IntPart into the
		// wrong error code.
		units := qty.Truncate(0)
		if units.LessThan(decimal.NewFromInt(unitQuantityMin)) {
			return nil, shared.NewBelowMinError(field, unitQuantityMin)
		}
		if units.GreaterThan(decimal.NewFromInt(unitQuantityMax)) {
			return nil, shared.NewAboveMaxError(field, unitQuantityMax)
		}
		q, err := NewUnitQuantity(field, int(units.IntPart()))
		if err != nil {
			return nil, err
		}
		return q, nil
	case GizmoCode:
		q, err := NewKilogramQuantity(field, qty)
		if err != nil {
			return nil, err
		}
		return q, nil
	default:
		// The interface is sealed; only a nil ProductCode lands here.
		return nil, shared.NewEmptyInputError("ProductCode")
	}
}

// UnitQuantity is a whole unit count between 1 and 1000 inclusive.
type UnitQuantity struct {
	value int
}

func wrapUnitQuantity(v int) UnitQuantity {
	return UnitQuantity{value: v}
}

// NewUnitQuantity creates a UnitQuantity from raw input.
func NewUnitQuantity(field string, raw int) (UnitQuantity, error) {
	return constraint.Int(field, wrapUnitQuantity, unitQuantityMin, unitQuantityMax, raw)
}

func (UnitQuantity) orderQuantity() {}

// Units returns the count as an int.
func (q UnitQuantity) Units() int {
	return q.value
}

// Amount returns the count as a decimal.
func (q UnitQuantity) Amount() decimal.Decimal {
	return decimal.NewFromInt(int64(q.value))
}

// KilogramQuantity is a weight between 0.05 and 100.00 kg inclusive.
type KilogramQuantity struct {
	value decimal.Decimal
}

func wrapKilogramQuantity(v decimal.Decimal) KilogramQuantity {
	return KilogramQuantity{value: v}
}

// NewKilogramQuantity creates a KilogramQuantity from raw input.
func NewKilogramQuantity(field string, raw decimal.Decimal) (KilogramQuantity, error) {
	return constraint.Decimal(field, wrapKilogramQuantity, kilogramQuantityMin, kilogramQuantityMax, raw)
}

// NewKilogramQuantityFromFloat creates a KilogramQuantity from a float64.
func NewKilogramQuantityFromFloat(field string, raw float64) (KilogramQuantity, error) {
	return NewKilogramQuantity(field, decimal.NewFromFloat(raw))
}

func (KilogramQuantity) orderQuantity() {}

// Amount returns the weight as a decimal.
func (q KilogramQuantity) Amount() decimal.Decimal {
	return q.value
}
