package hrmsclient

import (
	"time"

	"github.com/workforcelab/hrms-backend-go/internal/domain/attendance"
	"github.com/workforcelab/hrms-backend-go/internal/domain/leave"
	"github.com/workforcelab/hrms-backend-go/internal/domain/payroll"
)

// Local previews mirror the server's domain rules so forms can give
// instant feedback without a round trip. The submit path still goes
// through the API; a preview is never authoritative.

// PreviewLocal computes a salary breakdown with the given
// configuration. Pass nil to use the statutory defaults.
func PreviewLocal(input payroll.SalaryInput, cfg *payroll.SalaryConfig) payroll.Breakdown {
	return payroll.Compute(input, cfg)
}

// ClassifyNow answers "what status would a check-in right now get"
// under a timing configuration.
func ClassifyNow(cfg attendance.TimingConfig) attendance.Status {
	return attendance.Classify(time.Now(), cfg)
}

// CheckLeaveSufficiency runs the pre-submission balance gate locally.
func CheckLeaveSufficiency(balance leave.Balance, leaveType leave.Type, requestedDays float64) error {
	return leave.CheckSufficiency(balance, leaveType, requestedDays)
}
