package leave

import (
	"time"

	"github.com/workforcelab/hrms-backend-go/internal/pkg/validator"
)

type ApplyRequest struct {
	EmployeeID string `json:"employeeId"`
	LeaveType  Type   `json:"leaveType"`
	FromDate   string `json:"fromDate"` // YYYY-MM-DD
	ToDate     string `json:"toDate"`   // YYYY-MM-DD
	IsHalfDay  bool   `json:"isHalfDay"`
	Reason     string `json:"reason"`
}

func (r ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if !r.LeaveType.Known() {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "must be CL, SL, PL or LWP"})
	}
	from, okFrom := validator.IsValidDate(r.FromDate)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "fromDate", Message: "must be YYYY-MM-DD"})
	}
	to, okTo := validator.IsValidDate(r.ToDate)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "toDate", Message: "must be YYYY-MM-DD"})
	}
	if okFrom && okTo && from.After(to) {
		errs = append(errs, validator.ValidationError{Field: "toDate", Message: "must not be before fromDate"})
	}
	if r.IsHalfDay && okFrom && okTo && !from.Equal(to) {
		errs = append(errs, validator.ValidationError{Field: "isHalfDay", Message: "half day requires a single date"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RequestedDays derives the day count from the date range: inclusive
// calendar days, or 0.5 for a half-day application.
func (r ApplyRequest) RequestedDays() float64 {
	if r.IsHalfDay {
		return 0.5
	}
	from, okFrom := validator.IsValidDate(r.FromDate)
	to, okTo := validator.IsValidDate(r.ToDate)
	if !okFrom || !okTo || from.After(to) {
		return 0
	}
	return to.Sub(from).Hours()/24 + 1
}

type DecisionRequest struct {
	ID              string  `json:"-"`
	Approve         bool    `json:"approve"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
}

func (r DecisionRequest) Validate() error {
	if !r.Approve && (r.RejectionReason == nil || validator.IsEmpty(*r.RejectionReason)) {
		return validator.ValidationErrors{{Field: "rejectionReason", Message: "is required when rejecting"}}
	}
	return nil
}

type BulkDecisionRequest struct {
	IDs             []string `json:"ids"`
	Approve         bool     `json:"approve"`
	RejectionReason *string  `json:"rejectionReason,omitempty"`
}

func (r BulkDecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "ids", Message: "at least one application id is required"})
	}
	if !r.Approve && (r.RejectionReason == nil || validator.IsEmpty(*r.RejectionReason)) {
		errs = append(errs, validator.ValidationError{Field: "rejectionReason", Message: "is required when rejecting"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetAllocationRequest struct {
	EmployeeID   string  `json:"employeeId"`
	Year         int     `json:"year"`
	LeaveType    Type    `json:"leaveType"`
	Allocated    float64 `json:"allocated"`
	CarryForward float64 `json:"carryForward"`
}

func (r SetAllocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if r.Year < 2000 || r.Year > time.Now().Year()+1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	if !r.LeaveType.Known() || r.LeaveType.Normalized() == TypeUnpaid {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "must be CL, SL or PL"})
	}
	if r.Allocated < 0 || r.CarryForward < 0 {
		errs = append(errs, validator.ValidationError{Field: "allocated", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
