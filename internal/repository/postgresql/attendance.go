package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workforcelab/hrms-backend-go/internal/domain/attendance"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.organization_id, a.branch_id, a.date,
	a.check_in_time, a.check_out_time, a.auto_status, a.approval_status,
	a.regularization_reason, a.remarks, a.approved_by, a.approved_at,
	a.created_at, a.updated_at,
	e.full_name AS employee_name
`

const attendanceJoins = `
	FROM attendance_records a
	INNER JOIN employees e ON a.employee_id = e.id
`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.OrganizationID, &rec.BranchID, &rec.Date,
		&rec.CheckInTime, &rec.CheckOutTime, &rec.AutoStatus, &rec.ApprovalStatus,
		&rec.RegularizationReason, &rec.Remarks, &rec.ApprovedBy, &rec.ApprovedAt,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)
	return rec, err
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, organization_id, branch_id, date,
			check_in_time, auto_status, approval_status,
			regularization_reason, remarks,
			created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4,
			$5, $6, $7,
			$8, $9,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.OrganizationID, rec.BranchID, rec.Date,
		rec.CheckInTime, rec.AutoStatus, rec.ApprovalStatus,
		rec.RegularizationReason, rec.Remarks,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("create attendance record: %w", err)
	}

	return rec, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + attendanceColumns + attendanceJoins + " WHERE a.id = $1"
	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + attendanceColumns + attendanceJoins + " WHERE a.employee_id = $1 AND a.date = $2"
	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"a.organization_id = $1"}
	args := []any{filter.OrganizationID}
	argIdx := 2

	if filter.EmployeeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.ApprovalStatus != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("a.approval_status = $%d", argIdx))
		args = append(args, filter.ApprovalStatus)
		argIdx++
	}
	if filter.From != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *filter.To)
		argIdx++
	}

	whereClause := "WHERE " + strings.Join(whereClauses, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) " + attendanceJoins + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count attendance records: %w", err)
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf("SELECT %s %s %s ORDER BY a.date DESC, e.full_name LIMIT $%d OFFSET $%d",
		attendanceColumns, attendanceJoins, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *attendanceRepositoryImpl) SetCheckOut(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE attendance_records
		SET check_out_time = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`, at, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("set check-out for record %s: %w", id, err)
	}
	return nil
}

func (r *attendanceRepositoryImpl) UpdateApproval(ctx context.Context, id string, status attendance.ApprovalStatus, approvedBy string, remarks *string) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE attendance_records
		SET approval_status = $1, approved_by = $2, approved_at = NOW(),
			remarks = COALESCE($3, remarks), updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`, status, approvedBy, remarks, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("update approval for record %s: %w", id, err)
	}
	return nil
}

func (r *attendanceRepositoryImpl) CountPresentDays(ctx context.Context, employeeID string, year int, month time.Month) (float64, error) {
	q := GetQuerier(ctx, r.db)

	// Half days pay half; absents pay nothing. Only approved or
	// pending records count, rejected regularizations do not.
	query := `
		SELECT COALESCE(SUM(
			CASE a.auto_status
				WHEN 'HALF_DAY' THEN 0.5
				WHEN 'ABSENT' THEN 0
				ELSE 1
			END
		), 0)
		FROM attendance_records a
		WHERE a.employee_id = $1
		  AND a.approval_status <> 'REJECTED'
		  AND date_part('year', a.date) = $2
		  AND date_part('month', a.date) = $3
	`

	var days float64
	if err := q.QueryRow(ctx, query, employeeID, year, int(month)).Scan(&days); err != nil {
		return 0, fmt.Errorf("count present days: %w", err)
	}
	return days, nil
}
