package organization

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrBranchNotFound       = errors.New("branch not found")
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrShiftNotFound        = errors.New("shift not found")
	ErrCustomFieldNotFound  = errors.New("custom field not found")
	ErrNameExists           = errors.New("name already exists")
)
