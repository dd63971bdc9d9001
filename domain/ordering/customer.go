package ordering

import (
	"encoding/json"

	"github.com/erp/ordertaking/domain/shared/valueobject"
)

// PersonalName is a customer's first and last name.
type PersonalName struct {
	FirstName valueobject.String50
	LastName  valueobject.String50
}

// NewPersonalName builds a PersonalName from raw input.
func NewPersonalName(firstName, lastName string) (PersonalName, error) {
	first, err := valueobject.NewString50("FirstName", firstName)
	if err != nil {
		return PersonalName{}, err
	}
	last, err := valueobject.NewString50("LastName", lastName)
	if err != nil {
		return PersonalName{}, err
	}
	return PersonalName{FirstName: first, LastName: last}, nil
}

// CustomerInfo is the validated customer portion of an order.
type CustomerInfo struct {
	Name         PersonalName
	EmailAddress valueobject.EmailAddress
	VipStatus    valueobject.VipStatus
}

// CustomerInfoDTO carries the raw, unvalidated fields of a
// CustomerInfo, for construction and JSON interchange.
type CustomerInfoDTO struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	VipStatus    string `json:"vipStatus"`
}

// NewCustomerInfo builds a CustomerInfo from raw input, validating
// every field through its factory.
func NewCustomerInfo(dto CustomerInfoDTO) (CustomerInfo, error) {
	name, err := NewPersonalName(dto.FirstName, dto.LastName)
	if err != nil {
		return CustomerInfo{}, err
	}
	email, err := valueobject.NewEmailAddress("EmailAddress", dto.EmailAddress)
	if err != nil {
		return CustomerInfo{}, err
	}
	vip, err := valueobject.NewVipStatus("VipStatus", dto.VipStatus)
	if err != nil {
		return CustomerInfo{}, err
	}
	return CustomerInfo{Name: name, EmailAddress: email, VipStatus: vip}, nil
}

// ToDTO converts the CustomerInfo back to its raw representation.
func (c CustomerInfo) ToDTO() CustomerInfoDTO {
	return CustomerInfoDTO{
		FirstName:    c.Name.FirstName.Value(),
		LastName:     c.Name.LastName.Value(),
		EmailAddress: c.EmailAddress.Value(),
		VipStatus:    c.VipStatus.Value(),
	}
}

// MarshalJSON implements json.Marshaler.
func (c CustomerInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ToDTO())
}

// UnmarshalJSON implements json.Unmarshaler, delegating to
// NewCustomerInfo so decoded values are fully validated.
func (c *CustomerInfo) UnmarshalJSON(data []byte) error {
	var dto CustomerInfoDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	info, err := NewCustomerInfo(dto)
	if err != nil {
		return err
	}
	*c = info
	return nil
}
