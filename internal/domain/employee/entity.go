package employee

import "time"

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "ACTIVE"
	StatusInactive EmploymentStatus = "INACTIVE"
	StatusResigned EmploymentStatus = "RESIGNED"
)

// SalaryStructure holds the monthly contractual components used by the
// payroll calculator.
type SalaryStructure struct {
	Base       float64 `json:"base"`
	HRA        float64 `json:"hra"`
	Conveyance float64 `json:"conveyance"`
}

type Employee struct {
	ID             string           `json:"id"`
	OrganizationID string           `json:"organizationId"`
	UserID         *string          `json:"userId,omitempty"`
	EmployeeCode   string           `json:"employeeCode"`
	FullName       string           `json:"fullName"`
	Email          string           `json:"email"`
	Phone          *string          `json:"phone,omitempty"`
	BranchID       *string          `json:"branchId,omitempty"`
	DepartmentID   *string          `json:"departmentId,omitempty"`
	ShiftID        *string          `json:"shiftId,omitempty"`
	Designation    *string          `json:"designation,omitempty"`
	HireDate       time.Time        `json:"hireDate"`
	Status         EmploymentStatus `json:"status"`
	Salary         SalaryStructure  `json:"salary"`
	CustomFields   map[string]string `json:"customFields,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`

	// DTO / Join
	DepartmentName *string `json:"departmentName,omitempty"`
	BranchName     *string `json:"branchName,omitempty"`
}

// ListFilter mirrors the employee list query surface: free-text
// search, department, status, branch, page.
type ListFilter struct {
	OrganizationID string
	Search         string
	DepartmentID   string
	BranchID       string
	Status         string
	Page           int
	Limit          int
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}
