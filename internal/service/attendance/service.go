package attendance

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/workforcelab/hrms-backend-go/internal/domain/attendance"
	"github.com/workforcelab/hrms-backend-go/internal/domain/employee"
	"github.com/workforcelab/hrms-backend-go/internal/domain/organization"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/qr"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/validator"
)

// bulkLimit caps concurrent decisions in a bulk operation.
const bulkLimit = 10

type Service struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	orgRepository organization.OrganizationRepository
	qrService     *qr.Service
}

func NewService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	orgRepository organization.OrganizationRepository,
	qrService *qr.Service,
) *Service {
	return &Service{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		orgRepository:        orgRepository,
		qrService:            qrService,
	}
}

// CheckIn records today's check-in. The status is classified once from
// the organization's timing configuration at this moment and never
// recomputed. A QR token, when present, is consumed and binds the
// record to the branch that displayed the code.
func (s *Service) CheckIn(ctx context.Context, organizationID string, req attendance.CheckInRequest) (attendance.Record, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Record{}, err
	}

	at := time.Now()
	if req.At != "" {
		parsed, ok := validator.IsValidDateTime(req.At)
		if !ok {
			return attendance.Record{}, attendance.ErrInvalidCheckInTime
		}
		at = parsed
	}
	day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)

	if _, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, day); err == nil {
		return attendance.Record{}, attendance.ErrAlreadyCheckedIn
	} else if !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.Record{}, err
	}

	branchID := emp.BranchID
	if req.QRToken != nil {
		tokenBranch, err := s.qrService.Consume(ctx, *req.QRToken)
		if err != nil {
			return attendance.Record{}, err
		}
		branchID = &tokenBranch
	}

	org, err := s.orgRepository.GetByID(ctx, organizationID)
	if err != nil {
		return attendance.Record{}, err
	}

	rec := attendance.Record{
		EmployeeID:     emp.ID,
		OrganizationID: organizationID,
		BranchID:       branchID,
		Date:           day,
		CheckInTime:    at,
		AutoStatus:     attendance.Classify(at, org.Timing),
		ApprovalStatus: attendance.ApprovalPending,
		Remarks:        req.Remarks,
	}

	return s.AttendanceRepository.Create(ctx, rec)
}

// CheckOut stamps the check-out time; the status set at check-in is
// left untouched.
func (s *Service) CheckOut(ctx context.Context, employeeID string) (attendance.Record, error) {
	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.Record{}, err
	}
	if err := s.AttendanceRepository.SetCheckOut(ctx, rec.ID, now); err != nil {
		return attendance.Record{}, err
	}
	rec.CheckOutTime = &now
	return rec, nil
}

func (s *Service) Get(ctx context.Context, id string) (attendance.Record, error) {
	return s.AttendanceRepository.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	return s.AttendanceRepository.List(ctx, filter)
}

// Decide approves or rejects one pending record. Both outcomes are
// terminal; the record's classified status never changes.
func (s *Service) Decide(ctx context.Context, actorID string, req attendance.DecisionRequest) (attendance.Record, error) {
	rec, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.Record{}, err
	}

	target := attendance.ApprovalRejected
	if req.Approve {
		target = attendance.ApprovalApproved
	}
	if !attendance.CanTransition(rec.ApprovalStatus, target) {
		return attendance.Record{}, attendance.ErrAlreadyProcessed
	}

	if err := s.AttendanceRepository.UpdateApproval(ctx, rec.ID, target, actorID, req.Remarks); err != nil {
		return attendance.Record{}, err
	}
	return s.AttendanceRepository.GetByID(ctx, rec.ID)
}

// BulkDecide settles every id independently with bounded concurrency.
// One failure never aborts the rest.
func (s *Service) BulkDecide(ctx context.Context, actorID string, req attendance.BulkDecisionRequest) (attendance.BulkResult, error) {
	if len(req.IDs) == 0 {
		return attendance.BulkResult{}, attendance.ErrNothingToApprove
	}

	var (
		mu     sync.Mutex
		result = attendance.BulkResult{Errors: make(map[string]string)}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkLimit)

	for _, id := range req.IDs {
		id := id
		g.Go(func() error {
			_, err := s.Decide(gctx, actorID, attendance.DecisionRequest{
				ID:      id,
				Approve: req.Approve,
				Remarks: req.Remarks,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Errors[id] = err.Error()
			} else {
				result.Succeeded++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return attendance.BulkResult{}, err
	}
	if result.Failed == 0 {
		result.Errors = nil
	}
	return result, nil
}

// MintQR issues a short-lived check-in token for a branch.
func (s *Service) MintQR(ctx context.Context, branchID string) (qr.Token, error) {
	token, err := s.qrService.Mint(ctx, branchID)
	if err != nil {
		return qr.Token{}, fmt.Errorf("mint check-in token: %w", err)
	}
	return token, nil
}

// RenderQR encodes a token id as a PNG QR code.
func (s *Service) RenderQR(tokenID string, size int) ([]byte, error) {
	return s.qrService.Render(tokenID, size)
}
