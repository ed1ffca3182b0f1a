package leave

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/workforcelab/hrms-backend-go/internal/domain/employee"
	"github.com/workforcelab/hrms-backend-go/internal/domain/leave"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/validator"
)

// bulkLimit caps concurrent decisions in a bulk operation.
const bulkLimit = 10

type Service struct {
	leave.ApplicationRepository
	leave.BalanceRepository
	employee.EmployeeRepository
}

func NewService(applicationRepository leave.ApplicationRepository, balanceRepository leave.BalanceRepository, employeeRepository employee.EmployeeRepository) *Service {
	return &Service{
		ApplicationRepository: applicationRepository,
		BalanceRepository:     balanceRepository,
		EmployeeRepository:    employeeRepository,
	}
}

// Apply creates a pending application. The balance check runs here
// authoritatively; clients run the same check for instant feedback but
// the server result wins.
func (s *Service) Apply(ctx context.Context, organizationID string, req leave.ApplyRequest) (leave.Application, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.Application{}, err
	}

	from, _ := validator.IsValidDate(req.FromDate)
	to, _ := validator.IsValidDate(req.ToDate)
	days := req.RequestedDays()

	balance, err := s.BalanceRepository.GetBalance(ctx, emp.ID, from.Year())
	if err != nil {
		return leave.Application{}, fmt.Errorf("load leave balance: %w", err)
	}
	if err := leave.CheckSufficiency(balance, req.LeaveType, days); err != nil {
		return leave.Application{}, err
	}

	app := leave.Application{
		EmployeeID:     emp.ID,
		OrganizationID: organizationID,
		LeaveType:      req.LeaveType.Normalized(),
		FromDate:       from,
		ToDate:         to,
		IsHalfDay:      req.IsHalfDay,
		Days:           days,
		Reason:         req.Reason,
		Status:         leave.StatusPending,
	}

	return s.ApplicationRepository.Create(ctx, app)
}

func (s *Service) Get(ctx context.Context, id string) (leave.Application, error) {
	return s.ApplicationRepository.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter leave.ListFilter) ([]leave.Application, int64, error) {
	return s.ApplicationRepository.List(ctx, filter)
}

// Balance returns the ledger with derived availability.
func (s *Service) Balance(ctx context.Context, employeeID string, year int) (leave.Balance, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	return s.BalanceRepository.GetBalance(ctx, employeeID, year)
}

func (s *Service) SetAllocation(ctx context.Context, req leave.SetAllocationRequest) error {
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return err
	}
	return s.BalanceRepository.SetAllocation(ctx, req.EmployeeID, req.Year, req.LeaveType, req.Allocated, req.CarryForward)
}

// Decide approves or rejects one pending application. Approval debits
// the ledger; both outcomes are terminal.
func (s *Service) Decide(ctx context.Context, actorID string, req leave.DecisionRequest) (leave.Application, error) {
	app, err := s.ApplicationRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.Application{}, err
	}

	target := leave.StatusRejected
	if req.Approve {
		target = leave.StatusApproved
	}
	if !leave.CanTransition(app.Status, target) {
		return leave.Application{}, leave.ErrAlreadyProcessed
	}

	if err := s.ApplicationRepository.UpdateStatus(ctx, app.ID, target, actorID, req.RejectionReason); err != nil {
		return leave.Application{}, err
	}

	if req.Approve && app.LeaveType.Normalized() != leave.TypeUnpaid {
		if err := s.BalanceRepository.AddUsed(ctx, app.EmployeeID, app.FromDate.Year(), app.LeaveType, app.Days); err != nil {
			return leave.Application{}, fmt.Errorf("debit leave balance: %w", err)
		}
	}

	return s.ApplicationRepository.GetByID(ctx, app.ID)
}

// BulkDecide settles every id independently. One failure never aborts
// the rest; the result reports per-id errors.
func (s *Service) BulkDecide(ctx context.Context, actorID string, req leave.BulkDecisionRequest) (leave.BulkResult, error) {
	if len(req.IDs) == 0 {
		return leave.BulkResult{}, leave.ErrNothingToDecide
	}

	var (
		mu     sync.Mutex
		result = leave.BulkResult{Errors: make(map[string]string)}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkLimit)

	for _, id := range req.IDs {
		id := id
		g.Go(func() error {
			_, err := s.Decide(gctx, actorID, leave.DecisionRequest{
				ID:              id,
				Approve:         req.Approve,
				RejectionReason: req.RejectionReason,
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
		return leave.BulkResult{}, err
	}
	if result.Failed == 0 {
		result.Errors = nil
	}
	return result, nil
}
