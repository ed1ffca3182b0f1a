package organization

import (
	"github.com/workforcelab/hrms-backend-go/internal/domain/attendance"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/validator"
)

type SaveOrganizationRequest struct {
	Name    string                   `json:"name"`
	Address *string                  `json:"address,omitempty"`
	Timing  *attendance.TimingConfig `json:"timing,omitempty"`
}

func (r SaveOrganizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}

	// Timing ordering is rejected here, at save time, so the
	// classifier never sees an unordered configuration.
	if r.Timing != nil {
		if err := r.Timing.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type SaveBranchRequest struct {
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
}

func (r SaveBranchRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{Field: "name", Message: "is required"}}
	}
	return nil
}

type SaveDepartmentRequest struct {
	Name string `json:"name"`
}

func (r SaveDepartmentRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{Field: "name", Message: "is required"}}
	}
	return nil
}

type SaveShiftRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (r SaveShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "startTime", Message: "must be a valid HH:MM time"})
	}
	if !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "endTime", Message: "must be a valid HH:MM time"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SaveCustomFieldRequest struct {
	Name     string          `json:"name"`
	Kind     CustomFieldKind `json:"kind"`
	Required bool            `json:"required"`
	Options  []string        `json:"options,omitempty"`
}

func (r SaveCustomFieldRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	switch r.Kind {
	case FieldText, FieldNumber, FieldDate:
	case FieldSelect:
		if len(r.Options) == 0 {
			errs = append(errs, validator.ValidationError{Field: "options", Message: "at least one option is required for SELECT fields"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be TEXT, NUMBER, DATE or SELECT"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
