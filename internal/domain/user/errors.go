package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrAccessDenied       = errors.New("access denied")
	ErrApproverRequired   = errors.New("approver role required")
	ErrOrgAdminRequired   = errors.New("organization admin role required")
	ErrInvalidRole        = errors.New("invalid role")
	ErrSecurityAnswer     = errors.New("security answer does not match")
	ErrNoSecurityQuestion = errors.New("security questions not configured")
)
