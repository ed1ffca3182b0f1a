package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workforcelab/hrms-backend-go/internal/domain/organization"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) organization.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, d organization.Department) (organization.Department, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO departments (id, organization_id, name, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`, d.OrganizationID, d.Name).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return organization.Department{}, organization.ErrNameExists
		}
		return organization.Department{}, fmt.Errorf("create department: %w", err)
	}

	return d, nil
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (organization.Department, error) {
	q := GetQuerier(ctx, r.db)

	var d organization.Department
	err := q.QueryRow(ctx, `
		SELECT id, organization_id, name, created_at, updated_at
		FROM departments WHERE id = $1
	`, id).Scan(&d.ID, &d.OrganizationID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Department{}, organization.ErrDepartmentNotFound
		}
		return organization.Department{}, err
	}
	return d, nil
}

func (r *departmentRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]organization.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, organization_id, name, created_at, updated_at
		FROM departments WHERE organization_id = $1 ORDER BY name
	`, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []organization.Department
	for rows.Next() {
		var d organization.Department
		if err := rows.Scan(&d.ID, &d.OrganizationID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

func (r *departmentRepositoryImpl) Update(ctx context.Context, d organization.Department) (organization.Department, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		UPDATE departments SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING updated_at
	`, d.Name, d.ID).Scan(&d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Department{}, organization.ErrDepartmentNotFound
		}
		return organization.Department{}, fmt.Errorf("update department %s: %w", d.ID, err)
	}
	return d, nil
}

func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return organization.ErrDepartmentNotFound
	}
	return nil
}
