package domain

import "strings"

// Role is the admin role carried by an access token. RoleNone is a regular user.
type Role string

const (
	RoleNone                Role = ""
	RoleSuperAdmin          Role = "super_admin"
	RoleBillingAdmin        Role = "billing_admin"
	RoleInventoryAdmin      Role = "inventory_admin"
	RoleCalibrationLabAdmin Role = "calibration_lab_admin"
	RoleQSafeAdmin          Role = "qsafe_admin"
)

// Feature is one of the six gated areas of the admin console.
type Feature string

const (
	FeatureUsers       Feature = "users"
	FeatureDevices     Feature = "devices"
	FeatureAccess      Feature = "access"
	FeatureBilling     Feature = "billing"
	FeatureCalibration Feature = "calibration"
	FeatureService     Feature = "service"
)

// Permissions is the fixed flag set a role resolves to.
type Permissions struct {
	Users       bool `json:"users"`
	Devices     bool `json:"devices"`
	Access      bool `json:"access"`
	Billing     bool `json:"billing"`
	Calibration bool `json:"calibration"`
	Service     bool `json:"service"`
}

var rolePermissions = map[Role]Permissions{
	RoleSuperAdmin: {
		Users: true, Devices: true, Access: true,
		Billing: true, Calibration: true, Service: true,
	},
	RoleBillingAdmin:        {Billing: true},
	RoleInventoryAdmin:      {Users: true, Devices: true, Access: true},
	RoleCalibrationLabAdmin: {Calibration: true},
	RoleQSafeAdmin:          {Service: true},
}

// ResolvePermissions maps a role to its flag set. Unknown roles and RoleNone
// resolve to the all-false set.
func ResolvePermissions(r Role) Permissions {
	return rolePermissions[r]
}

// Roles lists every admin role in display order.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleBillingAdmin, RoleInventoryAdmin, RoleCalibrationLabAdmin, RoleQSafeAdmin}
}

// ParseRole accepts the wire form of a role. Anything unrecognised is RoleNone.
func ParseRole(s string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := rolePermissions[r]; ok {
		return r
	}
	return RoleNone
}

// Valid reports whether r is an admin role from the table.
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Allows reports whether the flag for f is set.
func (p Permissions) Allows(f Feature) bool {
	switch f {
	case FeatureUsers:
		return p.Users
	case FeatureDevices:
		return p.Devices
	case FeatureAccess:
		return p.Access
	case FeatureBilling:
		return p.Billing
	case FeatureCalibration:
		return p.Calibration
	case FeatureService:
		return p.Service
	}
	return false
}

// AdminType is the older two-valued admin model ("full" | "billing").
type AdminType string

const (
	AdminTypeNone    AdminType = ""
	AdminTypeFull    AdminType = "full"
	AdminTypeBilling AdminType = "billing"
)

// LegacyAccess is the flag pair the older model derived from an AdminType.
type LegacyAccess struct {
	IsFullAccess    bool `json:"is_full_access"`
	IsBillingAccess bool `json:"is_billing_access"`
}

// RoleForAdminType projects the legacy model onto the role table.
func RoleForAdminType(t AdminType) Role {
	switch AdminType(strings.ToLower(string(t))) {
	case AdminTypeFull:
		return RoleSuperAdmin
	case AdminTypeBilling:
		return RoleBillingAdmin
	}
	return RoleNone
}

// LegacyAccessFor derives the older flag pair from a role. Only super_admin
// and billing_admin have a legacy equivalent.
func LegacyAccessFor(r Role) LegacyAccess {
	full := r == RoleSuperAdmin
	return LegacyAccess{IsFullAccess: full, IsBillingAccess: full || r == RoleBillingAdmin}
}
