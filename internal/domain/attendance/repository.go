package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)
	List(ctx context.Context, filter ListFilter) ([]Record, int64, error)
	SetCheckOut(ctx context.Context, id string, at time.Time) error
	UpdateApproval(ctx context.Context, id string, status ApprovalStatus, approvedBy string, remarks *string) error

	// CountPresentDays counts the records for a month that pay a full
	// or partial day. Half days count 0.5; absents count 0.
	CountPresentDays(ctx context.Context, employeeID string, year int, month time.Month) (float64, error)
}
