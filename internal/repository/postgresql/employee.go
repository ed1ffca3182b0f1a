package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workforcelab/hrms-backend-go/internal/domain/employee"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.organization_id, e.user_id, e.employee_code, e.full_name, e.email, e.phone,
	e.branch_id, e.department_id, e.shift_id, e.designation, e.hire_date, e.status,
	e.salary_base, e.salary_hra, e.salary_conveyance, e.custom_fields,
	e.created_at, e.updated_at,
	d.name AS department_name,
	b.name AS branch_name
`

const employeeJoins = `
	FROM employees e
	LEFT JOIN departments d ON e.department_id = d.id
	LEFT JOIN branches b ON e.branch_id = b.id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.OrganizationID, &e.UserID, &e.EmployeeCode, &e.FullName, &e.Email, &e.Phone,
		&e.BranchID, &e.DepartmentID, &e.ShiftID, &e.Designation, &e.HireDate, &e.Status,
		&e.Salary.Base, &e.Salary.HRA, &e.Salary.Conveyance, &e.CustomFields,
		&e.CreatedAt, &e.UpdatedAt,
		&e.DepartmentName,
		&e.BranchName,
	)
	return e, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, organization_id, user_id, employee_code, full_name, email, phone,
			branch_id, department_id, shift_id, designation, hire_date, status,
			salary_base, salary_hra, salary_conveyance, custom_fields,
			created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.OrganizationID, e.UserID, e.EmployeeCode, e.FullName, e.Email, e.Phone,
		e.BranchID, e.DepartmentID, e.ShiftID, e.Designation, e.HireDate, e.Status,
		e.Salary.Base, e.Salary.HRA, e.Salary.Conveyance, e.CustomFields,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return employee.Employee{}, employee.ErrEmailExists
			}
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("create employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + employeeColumns + employeeJoins + " WHERE e.id = $1"
	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByCode(ctx context.Context, organizationID, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + employeeColumns + employeeJoins + " WHERE e.organization_id = $1 AND e.employee_code = $2"
	e, err := scanEmployee(q.QueryRow(ctx, query, organizationID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"e.organization_id = $1"}
	args := []any{filter.OrganizationID}
	argIdx := 2

	if filter.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(
			"(e.full_name ILIKE $%d OR e.employee_code ILIKE $%d OR e.email ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.DepartmentID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("e.department_id = $%d", argIdx))
		args = append(args, filter.DepartmentID)
		argIdx++
	}
	if filter.BranchID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("e.branch_id = $%d", argIdx))
		args = append(args, filter.BranchID)
		argIdx++
	}
	if filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("e.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}

	whereClause := "WHERE " + strings.Join(whereClauses, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) " + employeeJoins + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf("SELECT %s %s %s ORDER BY e.full_name LIMIT $%d OFFSET $%d",
		employeeColumns, employeeJoins, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $1, email = $2, phone = $3,
			branch_id = $4, department_id = $5, shift_id = $6, designation = $7,
			status = $8, salary_base = $9, salary_hra = $10, salary_conveyance = $11,
			custom_fields = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		e.FullName, e.Email, e.Phone,
		e.BranchID, e.DepartmentID, e.ShiftID, e.Designation,
		e.Status, e.Salary.Base, e.Salary.HRA, e.Salary.Conveyance,
		e.CustomFields, e.ID,
	).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("update employee %s: %w", e.ID, err)
	}

	return e, nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
