package leave

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcelab/hrms-backend-go/internal/domain/employee"
	"github.com/workforcelab/hrms-backend-go/internal/domain/leave"
)

type fakeApplicationRepo struct {
	mu   sync.Mutex
	apps map[string]leave.Application
	next int
}

func newFakeApplicationRepo(apps ...leave.Application) *fakeApplicationRepo {
	r := &fakeApplicationRepo{apps: make(map[string]leave.Application)}
	for _, app := range apps {
		r.apps[app.ID] = app
	}
	return r
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app leave.Application) (leave.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	app.ID = "app-" + string(rune('0'+r.next))
	r.apps[app.ID] = app
	return app, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id string) (leave.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return leave.Application{}, leave.ErrApplicationNotFound
	}
	return app, nil
}

func (r *fakeApplicationRepo) List(ctx context.Context, filter leave.ListFilter) ([]leave.Application, int64, error) {
	return nil, 0, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id string, status leave.Status, actorID string, rejectionReason *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return leave.ErrApplicationNotFound
	}
	app.Status = status
	app.ApprovedBy = &actorID
	app.RejectionReason = rejectionReason
	r.apps[id] = app
	return nil
}

type fakeBalanceRepo struct {
	mu      sync.Mutex
	balance leave.Balance
}

func (r *fakeBalanceRepo) GetBalance(ctx context.Context, employeeID string, year int) (leave.Balance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.balance, nil
}

func (r *fakeBalanceRepo) SetAllocation(ctx context.Context, employeeID string, year int, typ leave.Type, allocated, carryForward float64) error {
	return nil
}

func (r *fakeBalanceRepo) AddUsed(ctx context.Context, employeeID string, year int, typ leave.Type, days float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balance.Used[typ.Normalized()] += days
	return nil
}

type fakeEmployeeRepo struct{}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, OrganizationID: "org-1"}, nil
}

func (r *fakeEmployeeRepo) GetByCode(ctx context.Context, organizationID, code string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func testBalance() leave.Balance {
	return leave.Balance{
		EmployeeID: "emp-1",
		Year:       2026,
		Allocated: map[leave.Type]float64{
			leave.TypeCasual: 5,
		},
		Used:         map[leave.Type]float64{},
		CarryForward: map[leave.Type]float64{},
	}
}

func TestApplyBlockedByInsufficientBalance(t *testing.T) {
	svc := NewService(newFakeApplicationRepo(), &fakeBalanceRepo{balance: testBalance()}, &fakeEmployeeRepo{})

	_, err := svc.Apply(context.Background(), "org-1", leave.ApplyRequest{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeCasual,
		FromDate:   "2026-08-03",
		ToDate:     "2026-08-09",
		Reason:     "family event",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestApplyUnpaidLeaveBypassesBalance(t *testing.T) {
	svc := NewService(newFakeApplicationRepo(), &fakeBalanceRepo{balance: testBalance()}, &fakeEmployeeRepo{})

	app, err := svc.Apply(context.Background(), "org-1", leave.ApplyRequest{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeUnpaid,
		FromDate:   "2026-08-03",
		ToDate:     "2026-09-30",
		Reason:     "sabbatical",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, app.Status)
	assert.InDelta(t, 59, app.Days, 0.01)
}

func TestDecideApproveDebitsLedger(t *testing.T) {
	apps := newFakeApplicationRepo(leave.Application{
		ID:         "app-1",
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeCasual,
		Days:       2,
		Status:     leave.StatusPending,
	})
	balances := &fakeBalanceRepo{balance: testBalance()}
	svc := NewService(apps, balances, &fakeEmployeeRepo{})

	app, err := svc.Decide(context.Background(), "approver-1", leave.DecisionRequest{ID: "app-1", Approve: true})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, app.Status)
	assert.Equal(t, 2.0, balances.balance.Used[leave.TypeCasual])
}

func TestDecideRejectLeavesLedgerAlone(t *testing.T) {
	apps := newFakeApplicationRepo(leave.Application{
		ID:         "app-1",
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeCasual,
		Days:       2,
		Status:     leave.StatusPending,
	})
	balances := &fakeBalanceRepo{balance: testBalance()}
	svc := NewService(apps, balances, &fakeEmployeeRepo{})

	reason := "peak period"
	app, err := svc.Decide(context.Background(), "approver-1", leave.DecisionRequest{
		ID: "app-1", Approve: false, RejectionReason: &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, app.Status)
	assert.Zero(t, balances.balance.Used[leave.TypeCasual])

	// Terminal: cannot re-decide.
	_, err = svc.Decide(context.Background(), "approver-1", leave.DecisionRequest{ID: "app-1", Approve: true})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestBulkDecidePartialFailure(t *testing.T) {
	approved := leave.Application{ID: "done", EmployeeID: "emp-2", LeaveType: leave.TypeSick, Days: 1, Status: leave.StatusApproved}
	apps := newFakeApplicationRepo(
		leave.Application{ID: "a", EmployeeID: "emp-1", LeaveType: leave.TypeCasual, Days: 1, Status: leave.StatusPending},
		approved,
		leave.Application{ID: "b", EmployeeID: "emp-3", LeaveType: leave.TypeCasual, Days: 1, Status: leave.StatusPending},
	)
	svc := NewService(apps, &fakeBalanceRepo{balance: testBalance()}, &fakeEmployeeRepo{})

	result, err := svc.BulkDecide(context.Background(), "approver-1", leave.BulkDecisionRequest{
		IDs:     []string{"a", "done", "b"},
		Approve: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, result.Errors, "done")
}
