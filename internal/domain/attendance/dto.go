package attendance

import (
	"github.com/workforcelab/hrms-backend-go/internal/pkg/validator"
)

// CheckInRequest records a check-in. QRToken is set when the check-in
// came from scanning a branch QR code; the token binds the record to
// that branch. At is RFC3339; empty means "now".
type CheckInRequest struct {
	EmployeeID string  `json:"employeeId"`
	At         string  `json:"at,omitempty"`
	QRToken    *string `json:"qrToken,omitempty"`
	Remarks    *string `json:"remarks,omitempty"`
}

func (r CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if r.At != "" {
		if _, ok := validator.IsValidDateTime(r.At); !ok {
			errs = append(errs, validator.ValidationError{Field: "at", Message: "must be an RFC3339 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DecisionRequest approves or rejects one pending record.
type DecisionRequest struct {
	ID      string  `json:"-"`
	Approve bool    `json:"approve"`
	Remarks *string `json:"remarks,omitempty"`
}

func (r DecisionRequest) Validate() error {
	if !r.Approve && (r.Remarks == nil || validator.IsEmpty(*r.Remarks)) {
		return validator.ValidationErrors{{Field: "remarks", Message: "a reason is required when rejecting"}}
	}
	return nil
}

// BulkDecisionRequest applies one decision to many records.
type BulkDecisionRequest struct {
	IDs     []string `json:"ids"`
	Approve bool     `json:"approve"`
	Remarks *string  `json:"remarks,omitempty"`
}

func (r BulkDecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "ids", Message: "at least one record id is required"})
	}
	if !r.Approve && (r.Remarks == nil || validator.IsEmpty(*r.Remarks)) {
		errs = append(errs, validator.ValidationError{Field: "remarks", Message: "a reason is required when rejecting"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
