package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAnyRole_FailClosed(t *testing.T) {
	assert.False(t, HasAnyRole("", RoleEmployee))
	assert.False(t, HasAnyRole(""))
	assert.False(t, HasAnyRole(Role("INTERN"), RoleEmployee))
	assert.False(t, HasAnyRole(Role("INTERN")))
}

func TestHasAnyRole_EmptyListIsUnrestricted(t *testing.T) {
	for _, r := range []Role{RolePlatformAdmin, RoleOrgAdmin, RoleHRAdmin, RoleManager, RoleEmployee, RoleSuperAdmin} {
		assert.True(t, HasAnyRole(r), "role %s should pass an unrestricted gate", r)
	}
}

func TestHasAnyRole_Membership(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		allowed []Role
		want    bool
	}{
		{"exact match", RoleManager, []Role{RoleManager}, true},
		{"member of list", RoleHRAdmin, []Role{RoleOrgAdmin, RoleHRAdmin}, true},
		{"not a member", RoleEmployee, []Role{RoleOrgAdmin, RoleHRAdmin}, false},
		{"legacy super admin gates as platform admin", RoleSuperAdmin, []Role{RolePlatformAdmin}, true},
		{"platform admin passes legacy gate", RolePlatformAdmin, []Role{RoleSuperAdmin}, true},
		{"manager is not org admin", RoleManager, []Role{RoleOrgAdmin}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAnyRole(tt.role, tt.allowed...))
		})
	}
}

// The gate must be deterministic and side-effect free: calling it twice
// with the same inputs always yields the same answer.
func TestHasAnyRole_Deterministic(t *testing.T) {
	roles := []Role{"", RolePlatformAdmin, RoleOrgAdmin, RoleHRAdmin, RoleManager, RoleEmployee, RoleSuperAdmin, Role("BOGUS")}
	lists := [][]Role{nil, {}, {RoleManager}, {RoleOrgAdmin, RoleHRAdmin}, {RoleEmployee, RoleManager, RoleOrgAdmin}}

	for _, r := range roles {
		for _, l := range lists {
			first := HasAnyRole(r, l...)
			second := HasAnyRole(r, l...)
			assert.Equal(t, first, second)
		}
	}
}

func TestUserPredicates(t *testing.T) {
	mgr := &User{Role: RoleManager}
	assert.True(t, mgr.CanApprove())
	assert.False(t, mgr.CanManageEmployees())
	assert.False(t, mgr.IsOrgAdmin())

	hr := &User{Role: RoleHRAdmin}
	assert.True(t, hr.CanApprove())
	assert.True(t, hr.CanManageEmployees())
	assert.False(t, hr.IsOrgAdmin())
}
