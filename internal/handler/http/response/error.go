package response

import (
	"errors"
	"net/http"

	"github.com/workforcelab/hrms-backend-go/internal/domain/attendance"
	"github.com/workforcelab/hrms-backend-go/internal/domain/auth"
	"github.com/workforcelab/hrms-backend-go/internal/domain/employee"
	"github.com/workforcelab/hrms-backend-go/internal/domain/leave"
	"github.com/workforcelab/hrms-backend-go/internal/domain/organization"
	"github.com/workforcelab/hrms-backend-go/internal/domain/payroll"
	"github.com/workforcelab/hrms-backend-go/internal/domain/user"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/qr"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var insufficient *leave.InsufficientBalanceError
	if errors.As(err, &insufficient) {
		BadRequest(w, insufficient.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrPasswordMismatch):
		BadRequest(w, "Current password is incorrect", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAccessDenied),
		errors.Is(err, user.ErrApproverRequired),
		errors.Is(err, user.ErrOrgAdminRequired):
		Forbidden(w, "Access denied")
	case errors.Is(err, user.ErrSecurityAnswer):
		Unauthorized(w, "Security answer does not match")
	case errors.Is(err, user.ErrNoSecurityQuestion):
		NotFound(w, "No security questions configured")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this organization")

	// Organization domain errors
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, organization.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, organization.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, organization.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, organization.ErrCustomFieldNotFound):
		NotFound(w, "Custom field not found")
	case errors.Is(err, organization.ErrNameExists):
		Conflict(w, "Name already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyProcessed):
		Conflict(w, "Attendance record already processed")
	case errors.Is(err, attendance.ErrReasonRequired):
		BadRequest(w, "A reason is required when rejecting", nil)
	case errors.Is(err, attendance.ErrNothingToApprove):
		BadRequest(w, "No pending records supplied", nil)
	case errors.Is(err, attendance.ErrInvalidCheckInTime):
		BadRequest(w, "Invalid check-in time", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrApplicationNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave application already processed")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrInvalidDays),
		errors.Is(err, leave.ErrUnknownType),
		errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, leave.ErrNothingToDecide):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrConfigNotFound):
		NotFound(w, "Salary configuration not found")

	// QR token errors
	case errors.Is(err, qr.ErrTokenInvalid):
		BadRequest(w, "QR code invalid or expired", nil)
	case errors.Is(err, qr.ErrUnavailable):
		InternalServerError(w, "QR service unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
