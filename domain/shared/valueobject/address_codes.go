package valueobject

import (
	"regexp"

	"github.com/erp/ordertaking/domain/shared/constraint"
)

var zipCodePattern = regexp.MustCompile(`\A\d{5}\z`)

// The 50 two-letter USPS state abbreviations. An enumerated set, not a
// general two-letter check.
var usStateCodePattern = regexp.MustCompile(
	`\A(AL|AK|AZ|AR|CA|CO|CT|DE|FL|GA|` +
		`HI|ID|IL|IN|IA|KS|KY|LA|ME|MD|` +
		`MA|MI|MN|MS|MO|MT|NE|NV|NH|NJ|` +
		`NM|NY|NC|ND|OH|OK|OR|PA|RI|SC|` +
		`SD|TN|TX|UT|VT|VA|WA|WV|WI|WY)\z`)

// ZipCode is a US zip code of exactly 5 digits.
type ZipCode struct {
	value string
}

func wrapZipCode(v string) ZipCode {
	return ZipCode{value: v}
}

// NewZipCode creates a ZipCode from raw input.
func NewZipCode(field, raw string) (ZipCode, error) {
	return constraint.Pattern(field, wrapZipCode, zipCodePattern, raw)
}

// Value returns the underlying string.
func (z ZipCode) Value() string {
	return z.value
}

// String implements fmt.Stringer.
func (z ZipCode) String() string {
	return z.value
}

// UsStateCode is one of the 50 USPS two-letter state codes.
type UsStateCode struct {
	value string
}

func wrapUsStateCode(v string) UsStateCode {
	return UsStateCode{value: v}
}

// NewUsStateCode creates a UsStateCode from raw input.
func NewUsStateCode(field, raw string) (UsStateCode, error) {
	return constraint.Pattern(field, wrapUsStateCode, usStateCodePattern, raw)
}

// Value returns the underlying string.
func (s UsStateCode) Value() string {
	return s.value
}

// String implements fmt.Stringer.
func (s UsStateCode) String() string {
	return s.value
}
