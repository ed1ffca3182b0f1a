package leave

import "time"

// Type enumerates the leave types the balance ledger tracks. PL and EL
// are the same bucket under two names; LWP has no balance ceiling.
type Type string

const (
	TypeCasual    Type = "CL"
	TypeSick      Type = "SL"
	TypePrivilege Type = "PL"
	TypeUnpaid    Type = "LWP"
)

// Normalized folds the EL alias into PL.
func (t Type) Normalized() Type {
	if t == "EL" {
		return TypePrivilege
	}
	return t
}

func (t Type) Known() bool {
	switch t.Normalized() {
	case TypeCasual, TypeSick, TypePrivilege, TypeUnpaid:
		return true
	}
	return false
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// CanTransition guards the application workflow. Pending moves to
// approved, rejected, or cancelled; all three are terminal.
func CanTransition(from, to Status) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusApproved || to == StatusRejected || to == StatusCancelled
}

type Application struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employeeId"`
	OrganizationID  string     `json:"organizationId"`
	LeaveType       Type       `json:"leaveType"`
	FromDate        time.Time  `json:"fromDate"`
	ToDate          time.Time  `json:"toDate"`
	IsHalfDay       bool       `json:"isHalfDay"`
	Days            float64    `json:"days"`
	Reason          string     `json:"reason"`
	Status          Status     `json:"status"`
	ApprovedBy      *string    `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`

	// DTO / Join
	EmployeeName *string `json:"employeeName,omitempty"`
}

// BulkResult aggregates per-item outcomes of a bulk decision. Items
// settle independently; a failure never rolls back the rest.
type BulkResult struct {
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Errors    map[string]string `json:"errors,omitempty"`
}

type ListFilter struct {
	OrganizationID string
	EmployeeID     string
	Status         string
	Year           int
	Page           int
	Limit          int
}
