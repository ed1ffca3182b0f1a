package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workforcelab/hrms-backend-go/internal/domain/organization"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) organization.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

func (r *shiftRepositoryImpl) Create(ctx context.Context, s organization.Shift) (organization.Shift, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO shifts (id, organization_id, name, start_time, end_time, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`, s.OrganizationID, s.Name, s.StartTime, s.EndTime).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return organization.Shift{}, fmt.Errorf("create shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (organization.Shift, error) {
	q := GetQuerier(ctx, r.db)

	var s organization.Shift
	err := q.QueryRow(ctx, `
		SELECT id, organization_id, name, start_time, end_time, created_at, updated_at
		FROM shifts WHERE id = $1
	`, id).Scan(&s.ID, &s.OrganizationID, &s.Name, &s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Shift{}, organization.ErrShiftNotFound
		}
		return organization.Shift{}, err
	}
	return s, nil
}

func (r *shiftRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]organization.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, organization_id, name, start_time, end_time, created_at, updated_at
		FROM shifts WHERE organization_id = $1 ORDER BY start_time, name
	`, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []organization.Shift
	for rows.Next() {
		var s organization.Shift
		if err := rows.Scan(&s.ID, &s.OrganizationID, &s.Name, &s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *shiftRepositoryImpl) Update(ctx context.Context, s organization.Shift) (organization.Shift, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		UPDATE shifts SET name = $1, start_time = $2, end_time = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`, s.Name, s.StartTime, s.EndTime, s.ID).Scan(&s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Shift{}, organization.ErrShiftNotFound
		}
		return organization.Shift{}, fmt.Errorf("update shift %s: %w", s.ID, err)
	}
	return s, nil
}

func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return organization.ErrShiftNotFound
	}
	return nil
}
