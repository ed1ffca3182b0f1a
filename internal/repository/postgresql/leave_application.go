package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/workforcelab/hrms-backend-go/internal/domain/leave"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/database"
)

type leaveApplicationRepositoryImpl struct {
	db *database.DB
}

func NewLeaveApplicationRepository(db *database.DB) leave.ApplicationRepository {
	return &leaveApplicationRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.organization_id, l.leave_type,
	l.from_date, l.to_date, l.is_half_day, l.days, l.reason,
	l.status, l.approved_by, l.approved_at, l.rejection_reason,
	l.created_at, l.updated_at,
	e.full_name AS employee_name
`

const leaveJoins = `
	FROM leave_applications l
	INNER JOIN employees e ON l.employee_id = e.id
`

func scanLeaveApplication(row pgx.Row) (leave.Application, error) {
	var app leave.Application
	err := row.Scan(
		&app.ID, &app.EmployeeID, &app.OrganizationID, &app.LeaveType,
		&app.FromDate, &app.ToDate, &app.IsHalfDay, &app.Days, &app.Reason,
		&app.Status, &app.ApprovedBy, &app.ApprovedAt, &app.RejectionReason,
		&app.CreatedAt, &app.UpdatedAt,
		&app.EmployeeName,
	)
	return app, err
}

func (r *leaveApplicationRepositoryImpl) Create(ctx context.Context, app leave.Application) (leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_applications (
			id, employee_id, organization_id, leave_type,
			from_date, to_date, is_half_day, days, reason, status,
			created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3,
			$4, $5, $6, $7, $8, $9,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		app.EmployeeID, app.OrganizationID, app.LeaveType,
		app.FromDate, app.ToDate, app.IsHalfDay, app.Days, app.Reason, app.Status,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return leave.Application{}, fmt.Errorf("create leave application: %w", err)
	}

	return app, nil
}

func (r *leaveApplicationRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + leaveColumns + leaveJoins + " WHERE l.id = $1"
	app, err := scanLeaveApplication(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Application{}, leave.ErrApplicationNotFound
		}
		return leave.Application{}, err
	}
	return app, nil
}

func (r *leaveApplicationRepositoryImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.Application, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"l.organization_id = $1"}
	args := []any{filter.OrganizationID}
	argIdx := 2

	if filter.EmployeeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("l.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("l.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Year != 0 {
		whereClauses = append(whereClauses, fmt.Sprintf("date_part('year', l.from_date) = $%d", argIdx))
		args = append(args, filter.Year)
		argIdx++
	}

	whereClause := "WHERE " + strings.Join(whereClauses, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) " + leaveJoins + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count leave applications: %w", err)
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf("SELECT %s %s %s ORDER BY l.created_at DESC LIMIT $%d OFFSET $%d",
		leaveColumns, leaveJoins, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query leave applications: %w", err)
	}
	defer rows.Close()

	var applications []leave.Application
	for rows.Next() {
		app, err := scanLeaveApplication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan leave application: %w", err)
		}
		applications = append(applications, app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

func (r *leaveApplicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, actorID string, rejectionReason *string) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE leave_applications
		SET status = $1, approved_by = $2, approved_at = NOW(),
			rejection_reason = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`, status, actorID, rejectionReason, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrApplicationNotFound
		}
		return fmt.Errorf("update status for leave application %s: %w", id, err)
	}
	return nil
}
