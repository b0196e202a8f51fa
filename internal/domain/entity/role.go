// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer indicates a regular customer role.
	RoleCustomer Role = "customer"
	// RoleAdmin indicates a back-office administrator role.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// Capability names a single thing an operation may require. Every protected
// operation declares exactly one capability; Session.Can is the one guard
// evaluating it, replacing per-endpoint role comparisons.
type Capability string

const (
	// CapabilityBookAppointment covers booking and cancelling own appointments.
	CapabilityBookAppointment Capability = "book_appointment"
	// CapabilityManageOwnPets covers CRUD on the customer's own pets.
	CapabilityManageOwnPets Capability = "manage_own_pets"
	// CapabilityViewOwnData covers the customer's profile, stats, and listings.
	CapabilityViewOwnData Capability = "view_own_data"
	// CapabilityManageAppointments covers the admin appointment surface.
	CapabilityManageAppointments Capability = "manage_appointments"
	// CapabilityManageCatalog covers admin service and groomer CRUD.
	CapabilityManageCatalog Capability = "manage_catalog"
	// CapabilityViewReports covers the admin aggregate counts.
	CapabilityViewReports Capability = "view_reports"
)

// roleCapabilities maps each role to the capabilities it grants.
var roleCapabilities = map[Role][]Capability{
	RoleCustomer: {
		CapabilityBookAppointment,
		CapabilityManageOwnPets,
		CapabilityViewOwnData,
	},
	RoleAdmin: {
		CapabilityManageAppointments,
		CapabilityManageCatalog,
		CapabilityViewReports,
		// Admins are also customers of the portal.
		CapabilityBookAppointment,
		CapabilityManageOwnPets,
		CapabilityViewOwnData,
	},
}

// Grants checks if the role grants the given capability.
func (r Role) Grants(capability Capability) bool {
	return slices.Contains(roleCapabilities[r], capability)
}

// Session is the resolved identity of the current request. It is populated by
// the authentication middleware and handed explicitly to every operation that
// needs identity; there is no ambient authentication singleton.
type Session struct {
	UserID uuid.UUID
	Roles  Roles
}

// Can evaluates the capability against the session's roles. It is the single
// authorization guard used by all entry points.
func (s Session) Can(capability Capability) bool {
	for _, role := range s.Roles {
		if role.Grants(capability) {
			return true
		}
	}

	return false
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool {
	return s.Roles.Contains(RoleAdmin)
}
