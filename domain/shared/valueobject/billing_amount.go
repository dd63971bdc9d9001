package valueobject

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/erp/ordertaking/domain/shared/constraint"
)

var (
	billingAmountMin = decimal.Zero
	billingAmountMax = decimal.NewFromInt(10000)
)

// BillingAmount is an order total between 0.00 and 10000.00 inclusive.
type BillingAmount struct {
	value decimal.Decimal
}

func wrapBillingAmount(v decimal.Decimal) BillingAmount {
	return BillingAmount{value: v}
}

// NewBillingAmount creates a BillingAmount from raw input.
func NewBillingAmount(field string, raw decimal.Decimal) (BillingAmount, error) {
	return constraint.Decimal(field, wrapBillingAmount, billingAmountMin, billingAmountMax, raw)
}

// NewBillingAmountFromFloat creates a BillingAmount from a float64.
func NewBillingAmountFromFloat(field string, raw float64) (BillingAmount, error) {
	return NewBillingAmount(field, decimal.NewFromFloat(raw))
}

// SumPrices sums the given prices and validates the total against the
// BillingAmount bounds. An empty slice sums to zero, which is valid.
func SumPrices(field string, prices []Price) (BillingAmount, error) {
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p.value)
	}
	return NewBillingAmount(field, total)
}

// Amount returns the decimal amount.
func (b BillingAmount) Amount() decimal.Decimal {
	return b.value
}

// Equals returns true if both amounts are equal.
func (b BillingAmount) Equals(other BillingAmount) bool {
	return b.value.Equal(other.value)
}

// String implements fmt.Stringer.
func (b BillingAmount) String() string {
	return b.value.StringFixed(2)
}

// MarshalJSON implements json.Marshaler.
func (b BillingAmount) MarshalJSON() ([]byte, error) {
	return b.value.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler, delegating to
// NewBillingAmount so a decoded value still satisfies the invariant.
func (b *BillingAmount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid billing amount: %w", err)
	}
	parsed, err := NewBillingAmount("BillingAmount", d)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Value implements driver.Valuer for database storage.
func (b BillingAmount) Value() (driver.Value, error) {
	return b.value.String(), nil
}

// Scan implements sql.Scanner, delegating to NewBillingAmount so a
// value read back from storage still satisfies the invariant.
func (b *BillingAmount) Scan(value any) error {
	if value == nil {
		*b = BillingAmount{}
		return nil
	}

	var strVal string
	switch v := value.(type) {
	case string:
		strVal = v
	case []byte:
		strVal = string(v)
	default:
		return fmt.Errorf("cannot scan %T into BillingAmount", value)
	}

	d, err := decimal.NewFromString(strVal)
	if err != nil {
		return fmt.Errorf("invalid decimal value: %w", err)
	}
	parsed, err := NewBillingAmount("BillingAmount", d)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
