package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSession_Can(t *testing.T) {
	customer := Session{UserID: uuid.New(), Roles: Roles{RoleCustomer}}
	admin := Session{UserID: uuid.New(), Roles: Roles{RoleAdmin}}
	anonymous := Session{}

	assert.True(t, customer.Can(CapabilityBookAppointment))
	assert.True(t, customer.Can(CapabilityManageOwnPets))
	assert.False(t, customer.Can(CapabilityManageCatalog))
	assert.False(t, customer.Can(CapabilityManageAppointments))

	assert.True(t, admin.Can(CapabilityManageCatalog))
	assert.True(t, admin.Can(CapabilityViewReports))
	assert.True(t, admin.Can(CapabilityBookAppointment))

	assert.False(t, anonymous.Can(CapabilityViewOwnData))
}

func TestSession_IsAdmin(t *testing.T) {
	assert.True(t, Session{Roles: Roles{RoleCustomer, RoleAdmin}}.IsAdmin())
	assert.False(t, Session{Roles: Roles{RoleCustomer}}.IsAdmin())
}

func TestRolesFromStrings_FiltersInvalid(t *testing.T) {
	roles := RolesFromStrings([]string{"admin", "customer", "merchant", ""})

	assert.Equal(t, Roles{RoleAdmin, RoleCustomer}, roles)
}
