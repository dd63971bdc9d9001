package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Validation error codes shared by every constrained-type factory
const (
	CodeEmptyInput         = "EMPTY_INPUT"
	CodeTooLong            = "TOO_LONG"
	CodeBelowMin           = "BELOW_MIN"
	CodeAboveMax           = "ABOVE_MAX"
	CodePatternMismatch    = "PATTERN_MISMATCH"
	CodeUnrecognizedFormat = "UNRECOGNIZED_FORMAT"
	CodeUnrecognizedValue  = "UNRECOGNIZED_VALUE"
)

// NewEmptyInputError reports a required value that was empty
func NewEmptyInputError(field string) *DomainError {
	return &DomainError{
		Code:    CodeEmptyInput,
		Field:   field,
		Message: fmt.Sprintf("%s must not be empty", field),
	}
}

// NewTooLongError reports a string exceeding its maximum length
func NewTooLongError(field string, maxLen int) *DomainError {
	return &DomainError{
		Code:    CodeTooLong,
		Field:   field,
		Message: fmt.Sprintf("%s must not be more than %d characters", field, maxLen),
	}
}

// NewBelowMinError reports a number below its inclusive minimum
func NewBelowMinError(field string, minVal any) *DomainError {
	return &DomainError{
		Code:    CodeBelowMin,
		Field:   field,
		Message: fmt.Sprintf("%s must not be less than %v", field, minVal),
	}
}

// NewAboveMaxError reports a number above its inclusive maximum
func NewAboveMaxError(field string, maxVal any) *DomainError {
	return &DomainError{
		Code:    CodeAboveMax,
		Field:   field,
		Message: fmt.Sprintf("%s must not be greater than %v", field, maxVal),
	}
}

// NewPatternMismatchError reports a string that does not fully match its pattern
func NewPatternMismatchError(field, pattern string) *DomainError {
	return &DomainError{
		Code:    CodePatternMismatch,
		Field:   field,
		Message: fmt.Sprintf("%s must match the pattern '%s'", field, pattern),
	}
}

// NewUnrecognizedFormatError reports a raw value whose shape fits no known variant
func NewUnrecognizedFormatError(field, raw string) *DomainError {
	return &DomainError{
		Code:    CodeUnrecognizedFormat,
		Field:   field,
		Message: fmt.Sprintf("%s: '%s' is not in a recognized format", field, raw),
	}
}

// NewUnrecognizedValueError reports a raw value outside a closed set of choices
func NewUnrecognizedValueError(field, raw string) *DomainError {
	return &DomainError{
		Code:    CodeUnrecognizedValue,
		Field:   field,
		Message: fmt.Sprintf("%s: '%s' is not a recognized value", field, raw),
	}
}
