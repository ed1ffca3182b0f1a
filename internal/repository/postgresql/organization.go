package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workforcelab/hrms-backend-go/internal/domain/attendance"
	"github.com/workforcelab/hrms-backend-go/internal/domain/organization"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/database"
)

type organizationRepositoryImpl struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepositoryImpl{db: db}
}

func (r *organizationRepositoryImpl) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address,
			   full_day_before, late_before, half_day_before,
			   grace_period_enabled, grace_period_minutes,
			   created_at, updated_at
		FROM organizations
		WHERE id = $1
	`

	var org organization.Organization
	err := q.QueryRow(ctx, query, id).Scan(
		&org.ID, &org.Name, &org.Address,
		&org.Timing.FullDayBefore, &org.Timing.LateBefore, &org.Timing.HalfDayBefore,
		&org.Timing.GracePeriodEnabled, &org.Timing.GracePeriodMinutes,
		&org.CreatedAt, &org.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, err
	}

	return org, nil
}

func (r *organizationRepositoryImpl) Update(ctx context.Context, org organization.Organization) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE organizations
		SET name = $1, address = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`
	err := q.QueryRow(ctx, query, org.Name, org.Address, org.ID).Scan(&org.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("update organization %s: %w", org.ID, err)
	}

	return org, nil
}

func (r *organizationRepositoryImpl) UpdateTiming(ctx context.Context, id string, timing attendance.TimingConfig) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE organizations
		SET full_day_before = $1, late_before = $2, half_day_before = $3,
			grace_period_enabled = $4, grace_period_minutes = $5,
			updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`
	var updatedID string
	err := q.QueryRow(ctx, query,
		timing.FullDayBefore, timing.LateBefore, timing.HalfDayBefore,
		timing.GracePeriodEnabled, timing.GracePeriodMinutes,
		id,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.ErrOrganizationNotFound
		}
		return fmt.Errorf("update timing for organization %s: %w", id, err)
	}
	return nil
}
