// Package constraint provides generic, reusable validation primitives
// for building constrained value types. Each function takes the raw
// primitive input and the target type's wrapping constructor, and
// returns either the constructed value or a *shared.DomainError. The
// package knows nothing about specific domain types; every bound and
// pattern is supplied by the caller.
package constraint

import (
	"regexp"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/erp/ordertaking/domain/shared"
)

// String validates a required string of at most maxLen characters and
// wraps it with ctor. The field label is used for error messages only.
func String[T any](field string, ctor func(string) T, maxLen int, raw string) (T, error) {
	var zero T
	if raw == "" {
		return zero, shared.NewEmptyInputError(field)
	}
	if utf8.RuneCountInString(raw) > maxLen {
		return zero, shared.NewTooLongError(field, maxLen)
	}
	return ctor(raw), nil
}

// OptionalString validates a string that may legitimately be absent.
// An empty raw value yields (nil, nil); a present value is validated
// against maxLen like String and returned by pointer.
func OptionalString[T any](field string, ctor func(string) T, maxLen int, raw string) (*T, error) {
	if raw == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(raw) > maxLen {
		return nil, shared.NewTooLongError(field, maxLen)
	}
	v := ctor(raw)
	return &v, nil
}

// Int validates an integer within the inclusive range [minVal, maxVal]
// and wraps it with ctor.
func Int[T any](field string, ctor func(int) T, minVal, maxVal, raw int) (T, error) {
	var zero T
	if raw < minVal {
		return zero, shared.NewBelowMinError(field, minVal)
	}
	if raw > maxVal {
		return zero, shared.NewAboveMaxError(field, maxVal)
	}
	return ctor(raw), nil
}

// Decimal validates a decimal within the inclusive range
// [minVal, maxVal] and wraps it with ctor.
func Decimal[T any](field string, ctor func(decimal.Decimal) T, minVal, maxVal, raw decimal.Decimal) (T, error) {
	var zero T
	if raw.LessThan(minVal) {
		return zero, shared.NewBelowMinError(field, minVal)
	}
	if raw.GreaterThan(maxVal) {
		return zero, shared.NewAboveMaxError(field, maxVal)
	}
	return ctor(raw), nil
}

// Pattern validates a required string against pattern and wraps it
// with ctor. Callers must supply patterns anchored to the whole string
// (`\A...\z`) so that extraneous leading or trailing characters are
// rejected; every pattern in the value catalog is anchored this way.
func Pattern[T any](field string, ctor func(string) T, pattern *regexp.Regexp, raw string) (T, error) {
	var zero T
	if raw == "" {
		return zero, shared.NewEmptyInputError(field)
	}
	if !pattern.MatchString(raw) {
		return zero, shared.NewPatternMismatchError(field, pattern.String())
	}
	return ctor(raw), nil
}
