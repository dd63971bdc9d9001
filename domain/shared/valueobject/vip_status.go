package valueobject

import (
	"strings"

	"github.com/erp/ordertaking/domain/shared"
)

// VipStatus is the customer's tier: Normal or Vip. The set is closed;
// the only values that exist are the two package-level ones below.
type VipStatus struct {
	value string
}

// The two VipStatus values. The value field doubles as the canonical
// display string.
var (
	VipStatusNormal = VipStatus{value: "Normal"}
	VipStatusVip    = VipStatus{value: "VIP"}
)

// NewVipStatus parses raw input case-insensitively: "normal"/"Normal"
// map to VipStatusNormal, "vip"/"VIP" to VipStatusVip. Anything else
// is unrecognized.
func NewVipStatus(field, raw string) (VipStatus, error) {
	switch {
	case strings.EqualFold(raw, "normal"):
		return VipStatusNormal, nil
	case strings.EqualFold(raw, "vip"):
		return VipStatusVip, nil
	default:
		return VipStatus{}, shared.NewUnrecognizedValueError(field, raw)
	}
}

// IsVip returns true for the Vip variant.
func (s VipStatus) IsVip() bool {
	return s == VipStatusVip
}

// Value returns the canonical display string ("Normal" or "VIP").
func (s VipStatus) Value() string {
	return s.value
}

// String implements fmt.Stringer.
func (s VipStatus) String() string {
	return s.value
}

// AllVipStatuses returns all valid VipStatus values.
func AllVipStatuses() []VipStatus {
	return []VipStatus{VipStatusNormal, VipStatusVip}
}
