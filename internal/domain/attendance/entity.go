package attendance

import "time"

// Status is the automatic classification assigned at check-in time. It
// is computed once from the organization's timing configuration and
// never recomputed afterwards; live previews use the same rule but are
// display-only.
type Status string

const (
	StatusOnTime  Status = "ON_TIME"
	StatusLate    Status = "LATE"
	StatusHalfDay Status = "HALF_DAY"
	StatusAbsent  Status = "ABSENT"
	StatusWFH     Status = "WFH"
	StatusOnDuty  Status = "ON_DUTY"
	StatusWeekOff Status = "WEEK_OFF"
	StatusHoliday Status = "HOLIDAY"
	StatusLeave   Status = "LEAVE"
)

// ApprovalStatus tracks the regularization workflow. PENDING is the
// only non-terminal state.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// CanTransition reports whether an approval state change is legal.
// Approved and rejected are terminal; nothing ever leaves them.
func CanTransition(from, to ApprovalStatus) bool {
	if from != ApprovalPending {
		return false
	}
	return to == ApprovalApproved || to == ApprovalRejected
}

type Record struct {
	ID                   string          `json:"id"`
	EmployeeID           string          `json:"employeeId"`
	OrganizationID       string          `json:"organizationId"`
	BranchID             *string         `json:"branchId,omitempty"`
	Date                 time.Time       `json:"date"`
	CheckInTime          time.Time       `json:"checkInTime"`
	CheckOutTime         *time.Time      `json:"checkOutTime,omitempty"`
	AutoStatus           Status          `json:"autoStatus"`
	ApprovalStatus       ApprovalStatus  `json:"approvalStatus"`
	RegularizationReason *string         `json:"regularizationReason,omitempty"`
	Remarks              *string         `json:"remarks,omitempty"`
	ApprovedBy           *string         `json:"approvedBy,omitempty"`
	ApprovedAt           *time.Time      `json:"approvedAt,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`

	// DTO / Join
	EmployeeName *string `json:"employeeName,omitempty"`
}

type ListFilter struct {
	OrganizationID string
	EmployeeID     string
	ApprovalStatus string
	From           *time.Time
	To             *time.Time
	Page           int
	Limit          int
}

// BulkResult aggregates per-item outcomes of a bulk approval. Items
// are processed independently; a failure never rolls back the rest.
type BulkResult struct {
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Errors    map[string]string `json:"errors,omitempty"`
}
