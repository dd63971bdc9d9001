package valueobject

import (
	"regexp"

	"github.com/erp/ordertaking/domain/shared/constraint"
)

// Deliberately loose: something before an @, something after. Full
// RFC 5322 validation is out of scope.
var emailAddressPattern = regexp.MustCompile(`\A.+@.+\z`)

// EmailAddress is a string containing an @ with characters on both sides.
type EmailAddress struct {
	value string
}

func wrapEmailAddress(v string) EmailAddress {
	return EmailAddress{value: v}
}

// NewEmailAddress creates an EmailAddress from raw input.
func NewEmailAddress(field, raw string) (EmailAddress, error) {
	return constraint.Pattern(field, wrapEmailAddress, emailAddressPattern, raw)
}

// Value returns the underlying string.
func (e EmailAddress) Value() string {
	return e.value
}

// String implements fmt.Stringer.
func (e EmailAddress) String() string {
	return e.value
}

// Equals returns true if both values hold the same address.
func (e EmailAddress) Equals(other EmailAddress) bool {
	return e.value == other.value
}
