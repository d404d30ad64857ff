package principal

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Role is the closed enumeration of operator roles in the back office.
// Role strings enter the system exactly once, at the boundary, through
// RoleFromString; downstream code only ever sees the enum and never
// re-maps case or spelling.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Seller creates orders and sees only their own.
	Seller

	// CallCenterAgent reviews pending orders and confirms or cancels them.
	CallCenterAgent

	// CallCenterManager has the same order authority as CallCenterAgent.
	CallCenterManager

	// PackagingAgent works the confirmed-order queue and marks orders packed.
	PackagingAgent

	// DeliveryAgent sees packed orders awaiting handoff.
	DeliveryAgent

	// StockKeeper has read access to all orders.
	StockKeeper

	// Admin owns a tenant: the sellers it created and their orders.
	Admin

	// SuperAdmin has unrestricted read access across tenants.
	SuperAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:       "UNKNOWN",
		Seller:            "SELLER",
		CallCenterAgent:   "CALL_CENTER_AGENT",
		CallCenterManager: "CALL_CENTER_MANAGER",
		PackagingAgent:    "PACKAGING_AGENT",
		DeliveryAgent:     "DELIVERY_AGENT",
		StockKeeper:       "STOCK_KEEPER",
		Admin:             "ADMIN",
		SuperAdmin:        "SUPER_ADMIN",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Seller:            "SELLER",
		CallCenterAgent:   "CALL_CENTER_AGENT",
		CallCenterManager: "CALL_CENTER_MANAGER",
		PackagingAgent:    "PACKAGING_AGENT",
		DeliveryAgent:     "DELIVERY_AGENT",
		StockKeeper:       "STOCK_KEEPER",
		Admin:             "ADMIN",
		SuperAdmin:        "SUPER_ADMIN",
	}
}

// RoleFromString parses the wire representation of a role
// (e.g. "CALL_CENTER_AGENT"). Returns an error for any string that is not
// a member of the valid role set.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// UnknownRole (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role, or "UNKNOWN" for
// invalid values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsCallCenter reports whether the role belongs to the call-center team.
func (r Role) IsCallCenter() bool {
	return r == CallCenterAgent || r == CallCenterManager
}
