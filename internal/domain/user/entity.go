package user

import "time"

type Role string

const (
	RolePlatformAdmin Role = "PLATFORM_ADMIN" // Platform operator - full access
	RoleOrgAdmin      Role = "ORG_ADMIN"      // Organization administrator
	RoleHRAdmin       Role = "HR_ADMIN"       // HR staff - employee and payroll management
	RoleManager       Role = "MANAGER"        // Can approve leave/attendance
	RoleEmployee      Role = "EMPLOYEE"       // Regular employee
	RoleSuperAdmin    Role = "SUPER_ADMIN"    // Legacy alias, gates like PLATFORM_ADMIN
)

type User struct {
	ID                   string
	OrganizationID       *string
	Email                string
	PasswordHash         *string
	Role                 Role
	IsFirstLogin         bool
	HasSecurityQuestions bool
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// DTO / Join
	EmployeeID *string
}

// Normalized maps the legacy SUPER_ADMIN alias onto PLATFORM_ADMIN so
// gating only ever sees the current role set.
func (r Role) Normalized() Role {
	if r == RoleSuperAdmin {
		return RolePlatformAdmin
	}
	return r
}

// Known reports whether the role is one of the enumerated set. Unknown
// roles carry no permission anywhere.
func (r Role) Known() bool {
	switch r.Normalized() {
	case RolePlatformAdmin, RoleOrgAdmin, RoleHRAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// IsOrgAdmin checks if user administers their organization
func (u *User) IsOrgAdmin() bool {
	return HasAnyRole(u.Role, RolePlatformAdmin, RoleOrgAdmin)
}

// CanManageEmployees checks if user can create and edit employee records
func (u *User) CanManageEmployees() bool {
	return HasAnyRole(u.Role, RolePlatformAdmin, RoleOrgAdmin, RoleHRAdmin)
}

// CanApprove checks if user can approve attendance and leave requests
func (u *User) CanApprove() bool {
	return HasAnyRole(u.Role, RolePlatformAdmin, RoleOrgAdmin, RoleHRAdmin, RoleManager)
}
