package valueobject

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/erp/ordertaking/domain/shared/constraint"
)

var (
	priceMin = decimal.Zero
	priceMax = decimal.NewFromInt(1000)
)

// Price is a per-unit price between 0.00 and 1000.00 inclusive.
// It is immutable - all operations return new Price instances.
type Price struct {
	value decimal.Decimal
}

func wrapPrice(v decimal.Decimal) Price {
	return Price{value: v}
}

// NewPrice creates a Price from raw input.
func NewPrice(field string, raw decimal.Decimal) (Price, error) {
	return constraint.Decimal(field, wrapPrice, priceMin, priceMax, raw)
}

// NewPriceFromFloat creates a Price from a float64.
func NewPriceFromFloat(field string, raw float64) (Price, error) {
	return NewPrice(field, decimal.NewFromFloat(raw))
}

// MustNewPrice creates a Price and panics if the invariant does not
// hold. Reserved for call sites holding a value already proven valid,
// such as package-level constants; never use it on untrusted input.
func MustNewPrice(raw decimal.Decimal) Price {
	p, err := NewPrice("Price", raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Amount returns the decimal amount.
func (p Price) Amount() decimal.Decimal {
	return p.value
}

// Multiply returns qty * price, re-validated against the Price bounds.
// Multiplication can legitimately push a price out of range; that
// surfaces as an error rather than a silent clamp.
func (p Price) Multiply(qty decimal.Decimal) (Price, error) {
	return NewPrice("Price", p.value.Mul(qty))
}

// Equals returns true if both prices hold the same amount.
func (p Price) Equals(other Price) bool {
	return p.value.Equal(other.value)
}

// String implements fmt.Stringer.
func (p Price) String() string {
	return p.value.StringFixed(2)
}

// MarshalJSON implements json.Marshaler.
func (p Price) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler, delegating to NewPrice so
// a value decoded from JSON still satisfies the invariant.
func (p *Price) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid price: %w", err)
	}
	parsed, err := NewPrice("Price", d)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value implements driver.Valuer for database storage.
func (p Price) Value() (driver.Value, error) {
	return p.value.String(), nil
}

// Scan implements sql.Scanner, delegating to NewPrice so a value read
// back from storage still satisfies the invariant.
func (p *Price) Scan(value any) error {
	if value == nil {
		*p = Price{}
		return nil
	}

	var strVal string
	switch v := value.(type) {
	case string:
		strVal = v
	case []byte:
		strVal = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Price", value)
	}

	d, err := decimal.NewFromString(strVal)
	if err != nil {
		return fmt.Errorf("invalid decimal value: %w", err)
	}
	parsed, err := NewPrice("Price", d)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
