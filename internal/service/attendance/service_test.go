package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcelab/hrms-backend-go/internal/domain/attendance"
	"github.com/workforcelab/hrms-backend-go/internal/domain/employee"
	"github.com/workforcelab/hrms-backend-go/internal/domain/organization"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/cache"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/qr"
)

type fakeAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]attendance.Record
}

func newFakeAttendanceRepo(records ...attendance.Record) *fakeAttendanceRepo {
	r := &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
	for _, rec := range records {
		r.records[rec.ID] = rec
	}
	return r
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.EmployeeID == rec.EmployeeID && existing.Date.Equal(rec.Date) {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
	}
	rec.ID = "rec-" + rec.EmployeeID + "-" + rec.Date.Format("2006-01-02")
	r.records[rec.ID] = rec
	return rec, nil
}

func (r *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (r *fakeAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []attendance.Record
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

func (r *fakeAttendanceRepo) SetCheckOut(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	rec.CheckOutTime = &at
	r.records[id] = rec
	return nil
}

func (r *fakeAttendanceRepo) UpdateApproval(ctx context.Context, id string, status attendance.ApprovalStatus, approvedBy string, remarks *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	rec.ApprovalStatus = status
	rec.ApprovedBy = &approvedBy
	r.records[id] = rec
	return nil
}

func (r *fakeAttendanceRepo) CountPresentDays(ctx context.Context, employeeID string, year int, month time.Month) (float64, error) {
	return 0, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
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

type fakeOrgRepo struct {
	org organization.Organization
}

func (r *fakeOrgRepo) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	return r.org, nil
}

func (r *fakeOrgRepo) Update(ctx context.Context, org organization.Organization) (organization.Organization, error) {
	return org, nil
}

func (r *fakeOrgRepo) UpdateTiming(ctx context.Context, id string, timing attendance.TimingConfig) error {
	return nil
}

func pendingRecord(id string) attendance.Record {
	return attendance.Record{
		ID:             id,
		EmployeeID:     "emp-" + id,
		OrganizationID: "org-1",
		Date:           time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		ApprovalStatus: attendance.ApprovalPending,
	}
}

func newTestService(repo *fakeAttendanceRepo) *Service {
	return NewService(
		repo,
		&fakeEmployeeRepo{employees: map[string]employee.Employee{}},
		&fakeOrgRepo{},
		qr.NewService(cache.NewUnavailable()),
	)
}

func TestBulkDecideAllSucceed(t *testing.T) {
	repo := newFakeAttendanceRepo(pendingRecord("a"), pendingRecord("b"), pendingRecord("c"))
	svc := newTestService(repo)

	result, err := svc.BulkDecide(context.Background(), "approver-1", attendance.BulkDecisionRequest{
		IDs:     []string{"a", "b", "c"},
		Approve: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Succeeded)
	assert.Equal(t, 0, result.Failed)
	assert.Nil(t, result.Errors)

	for _, id := range []string{"a", "b", "c"} {
		rec, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, attendance.ApprovalApproved, rec.ApprovalStatus)
	}
}

func TestBulkDecidePartialFailureDoesNotShortCircuit(t *testing.T) {
	processed := pendingRecord("done")
	processed.ApprovalStatus = attendance.ApprovalApproved

	repo := newFakeAttendanceRepo(pendingRecord("a"), processed, pendingRecord("b"))
	svc := newTestService(repo)

	result, err := svc.BulkDecide(context.Background(), "approver-1", attendance.BulkDecisionRequest{
		IDs:     []string{"a", "done", "missing", "b"},
		Approve: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 2, result.Failed)
	assert.Contains(t, result.Errors, "done")
	assert.Contains(t, result.Errors, "missing")

	// The items after the failures were still settled.
	rec, err := repo.GetByID(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, attendance.ApprovalApproved, rec.ApprovalStatus)
}

func TestBulkDecideLargeBatch(t *testing.T) {
	var records []attendance.Record
	var ids []string
	for i := 0; i < 37; i++ {
		id := string(rune('a'+i%26)) + string(rune('0'+i/26))
		records = append(records, pendingRecord(id))
		ids = append(ids, id)
	}
	repo := newFakeAttendanceRepo(records...)
	svc := newTestService(repo)

	result, err := svc.BulkDecide(context.Background(), "approver-1", attendance.BulkDecisionRequest{
		IDs:     ids,
		Approve: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 37, result.Succeeded)
	assert.Equal(t, 0, result.Failed)
}

func TestBulkDecideEmpty(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())
	_, err := svc.BulkDecide(context.Background(), "approver-1", attendance.BulkDecisionRequest{Approve: true})
	assert.ErrorIs(t, err, attendance.ErrNothingToApprove)
}

func TestDecideRejectTerminal(t *testing.T) {
	repo := newFakeAttendanceRepo(pendingRecord("a"))
	svc := newTestService(repo)

	remarks := "not at workplace"
	rec, err := svc.Decide(context.Background(), "approver-1", attendance.DecisionRequest{
		ID: "a", Approve: false, Remarks: &remarks,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.ApprovalRejected, rec.ApprovalStatus)

	// A second decision on the same record must fail.
	_, err = svc.Decide(context.Background(), "approver-1", attendance.DecisionRequest{
		ID: "a", Approve: true,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyProcessed)
}
