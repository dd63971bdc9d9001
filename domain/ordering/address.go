package ordering

import (
	"encoding/json"

	"github.com/erp/ordertaking/domain/shared/valueobject"
)

// Address is a validated US shipping or billing address. Line 1 is
// required; lines 2-4 are optional and nil when the raw input was
// empty.
type Address struct {
	AddressLine1 valueobject.String50
	AddressLine2 *valueobject.String50
	AddressLine3 *valueobject.String50
	AddressLine4 *valueobject.String50
	City         valueobject.String50
	ZipCode      valueobject.ZipCode
	State        valueobject.UsStateCode
	Country      valueobject.String50
}

// AddressDTO carries the raw, unvalidated fields of an Address, for
// construction and JSON interchange.
type AddressDTO struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	AddressLine4 string `json:"addressLine4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

// NewAddress builds an Address from raw input, validating every field
// through its factory. Empty optional lines yield nil; present ones
// are validated like any String50.
func NewAddress(dto AddressDTO) (Address, error) {
	line1, err := valueobject.NewString50("AddressLine1", dto.AddressLine1)
	if err != nil {
		return Address{}, err
	}
	line2, err := valueobject.NewOptionalString50("AddressLine2", dto.AddressLine2)
	if err != nil {
		return Address{}, err
	}
	line3, err := valueobject.NewOptionalString50("AddressLine3", dto.AddressLine3)
	if err != nil {
		return Address{}, err
	}
	line4, err := valueobject.NewOptionalString50("AddressLine4", dto.AddressLine4)
	if err != nil {
		return Address{}, err
	}
	city, err := valueobject.NewString50("City", dto.City)
	if err != nil {
		return Address{}, err
	}
	zip, err := valueobject.NewZipCode("ZipCode", dto.ZipCode)
	if err != nil {
		return Address{}, err
	}
	state, err := valueobject.NewUsStateCode("State", dto.State)
	if err != nil {
		return Address{}, err
	}
	country, err := valueobject.NewString50("Country", dto.Country)
	if err != nil {
		return Address{}, err
	}

	return Address{
		AddressLine1: line1,
		AddressLine2: line2,
		AddressLine3: line3,
		AddressLine4: line4,
		City:         city,
		ZipCode:      zip,
		State:        state,
		Country:      country,
	}, nil
}

// ToDTO converts the Address back to its raw representation. Absent
// optional lines become empty strings.
func (a Address) ToDTO() AddressDTO {
	dto := AddressDTO{
		AddressLine1: a.AddressLine1.Value(),
		City:         a.City.Value(),
		ZipCode:      a.ZipCode.Value(),
		State:        a.State.Value(),
		Country:      a.Country.Value(),
	}
	if a.AddressLine2 != nil {
		dto.AddressLine2 = a.AddressLine2.Value()
	}
	if a.AddressLine3 != nil {
		dto.AddressLine3 = a.AddressLine3.Value()
	}
	if a.AddressLine4 != nil {
		dto.AddressLine4 = a.AddressLine4.Value()
	}
	return dto
}

// MarshalJSON implements json.Marshaler.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ToDTO())
}

// UnmarshalJSON implements json.Unmarshaler, delegating to NewAddress
// so decoded values are fully validated.
func (a *Address) UnmarshalJSON(data []byte) error {
	var dto AddressDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	addr, err := NewAddress(dto)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
