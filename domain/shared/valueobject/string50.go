package valueobject

import "github.com/erp/ordertaking/domain/shared/constraint"

const string50MaxLen = 50

// String50 is a non-empty string of at most 50 characters.
type String50 struct {
	value string
}

func wrapString50(v string) String50 {
	return String50{value: v}
}

// NewString50 creates a String50 from raw input.
func NewString50(field, raw string) (String50, error) {
	return constraint.String(field, wrapString50, string50MaxLen, raw)
}

// NewOptionalString50 creates a String50 that may be absent: empty raw
// input yields (nil, nil), a present value is validated as usual.
func NewOptionalString50(field, raw string) (*String50, error) {
	return constraint.OptionalString(field, wrapString50, string50MaxLen, raw)
}

// Value returns the underlying string.
func (s String50) Value() string {
	return s.value
}

// String implements fmt.Stringer.
func (s String50) String() string {
	return s.value
}

// Equals returns true if both values hold the same string.
func (s String50) Equals(other String50) bool {
	return s.value == other.value
}
