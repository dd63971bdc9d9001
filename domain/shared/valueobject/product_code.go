package valueobject

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/erp/ordertaking/domain/shared"
	"github.com/erp/ordertaking/domain/shared/constraint"
)

var (
	widgetCodePattern = regexp.MustCompile(`\AW\d{4}\z`)
	gizmoCodePattern  = regexp.MustCompile(`\AG\d{3}\z`)
)

// ProductCode is the closed choice of product code families: a
// WidgetCode or a GizmoCode, nothing else. The unexported marker
// method seals the interface to this package, so consumers can
// type-switch over the two variants exhaustively.
type ProductCode interface {
	productCode()
	// Value returns the underlying raw code regardless of variant.
	Value() string
}

// NewProductCode classifies a raw code by its first character and
// validates it against that variant's rule: "W..." is a WidgetCode,
// "G..." is a GizmoCode, anything else is unrecognized.
func NewProductCode(field, raw string) (ProductCode, error) {
	switch {
	case raw == "":
		return nil, shared.NewEmptyInputError(field)
	case strings.HasPrefix(raw, "W"):
		code, err := NewWidgetCode(field, raw)
		if err != nil {
			return nil, err
		}
		return code, nil
	case strings.HasPrefix(raw, "G"):
		code, err := NewGizmoCode(field, raw)
		if err != nil {
			return nil, err
		}
		return code, nil
	default:
		return nil, shared.NewUnrecognizedFormatError(field, raw)
	}
}

// ParseProductCodeFromJSON decodes a JSON string into the matching
// ProductCode variant, delegating to NewProductCode so the decoded
// value is fully validated.
func ParseProductCodeFromJSON(field string, data []byte) (ProductCode, error) {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse product code JSON: %w", err)
	}
	return NewProductCode(field, raw)
}

// WidgetCode is a product code of the widget family: a literal W
// followed by exactly 4 digits.
type WidgetCode struct {
	value string
}

func wrapWidgetCode(v string) WidgetCode {
	return WidgetCode{value: v}
}

// NewWidgetCode creates a WidgetCode from raw input.
func NewWidgetCode(field, raw string) (WidgetCode, error) {
	return constraint.Pattern(field, wrapWidgetCode, widgetCodePattern, raw)
}

func (WidgetCode) productCode() {}

// Value returns the underlying code.
func (c WidgetCode) Value() string {
	return c.value
}

// String implements fmt.Stringer.
func (c WidgetCode) String() string {
	return c.value
}

// MarshalJSON implements json.Marshaler, emitting the raw code string.
func (c WidgetCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value)
}

// UnmarshalJSON implements json.Unmarshaler, delegating to
// NewWidgetCode so a decoded value still satisfies the invariant.
func (c *WidgetCode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewWidgetCode("ProductCode", raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// GizmoCode is a product code of the gizmo family: a literal G
// followed by exactly 3 digits.
type GizmoCode struct {
	value string
}

func wrapGizmoCode(v string) GizmoCode {
	return GizmoCode{value: v}
}

// NewGizmoCode creates a GizmoCode from raw input.
func NewGizmoCode(field, raw string) (GizmoCode, error) {
	return constraint.Pattern(field, wrapGizmoCode, gizmoCodePattern, raw)
}

func (GizmoCode) productCode() {}

// Value returns the underlying code.
func (c GizmoCode) Value() string {
	return c.value
}

// String implements fmt.Stringer.
func (c GizmoCode) String() string {
	return c.value
}

// MarshalJSON implements json.Marshaler, emitting the raw code string.
func (c GizmoCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value)
}

// UnmarshalJSON implements json.Unmarshaler, delegating to
// NewGizmoCode so a decoded value still satisfies the invariant.
func (c *GizmoCode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewGizmoCode("ProductCode", raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
