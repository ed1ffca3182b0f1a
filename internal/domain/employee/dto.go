package employee

import (
	"github.com/workforcelab/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string          `json:"employeeCode"`
	FullName     string          `json:"fullName"`
	Email        string          `json:"email"`
	Phone        *string         `json:"phone,omitempty"`
	BranchID     *string         `json:"branchId,omitempty"`
	DepartmentID *string         `json:"departmentId,omitempty"`
	ShiftID      *string         `json:"shiftId,omitempty"`
	Designation  *string         `json:"designation,omitempty"`
	HireDate     string          `json:"hireDate"`
	Salary       SalaryStructure `json:"salary"`
	CustomFields map[string]string `json:"customFields,omitempty"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employeeCode", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hireDate", Message: "must be YYYY-MM-DD"})
	}
	if r.Salary.Base < 0 || r.Salary.HRA < 0 || r.Salary.Conveyance < 0 {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "components must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string           `json:"-"`
	FullName     *string          `json:"fullName,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	BranchID     *string          `json:"branchId,omitempty"`
	DepartmentID *string          `json:"departmentId,omitempty"`
	ShiftID      *string          `json:"shiftId,omitempty"`
	Designation  *string          `json:"designation,omitempty"`
	Status       *EmploymentStatus `json:"status,omitempty"`
	Salary       *SalaryStructure `json:"salary,omitempty"`
	CustomFields map[string]string `json:"customFields,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Status != nil {
		switch *r.Status {
		case StatusActive, StatusInactive, StatusResigned:
		default:
			errs = append(errs, validator.ValidationError{Field: "status", Message: "must be ACTIVE, INACTIVE or RESIGNED"})
		}
	}
	if r.Salary != nil && (r.Salary.Base < 0 || r.Salary.HRA < 0 || r.Salary.Conveyance < 0) {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "components must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
