package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workforcelab/hrms-backend-go/internal/domain/organization"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/database"
)

type customFieldRepositoryImpl struct {
	db *database.DB
}

func NewCustomFieldRepository(db *database.DB) organization.CustomFieldRepository {
	return &customFieldRepositoryImpl{db: db}
}

func (r *customFieldRepositoryImpl) Create(ctx context.Context, f organization.CustomField) (organization.CustomField, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO custom_fields (id, organization_id, name, kind, required, options, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`, f.OrganizationID, f.Name, f.Kind, f.Required, f.Options).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return organization.CustomField{}, fmt.Errorf("create custom field: %w", err)
	}

	return f, nil
}

func (r *customFieldRepositoryImpl) GetByID(ctx context.Context, id string) (organization.CustomField, error) {
	q := GetQuerier(ctx, r.db)

	var f organization.CustomField
	err := q.QueryRow(ctx, `
		SELECT id, organization_id, name, kind, required, options, created_at, updated_at
		FROM custom_fields WHERE id = $1
	`, id).Scan(&f.ID, &f.OrganizationID, &f.Name, &f.Kind, &f.Required, &f.Options, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.CustomField{}, organization.ErrCustomFieldNotFound
		}
		return organization.CustomField{}, err
	}
	return f, nil
}

func (r *customFieldRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]organization.CustomField, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, organization_id, name, kind, required, options, created_at, updated_at
		FROM custom_fields WHERE organization_id = $1 ORDER BY created_at
	`, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []organization.CustomField
	for rows.Next() {
		var f organization.CustomField
		if err := rows.Scan(&f.ID, &f.OrganizationID, &f.Name, &f.Kind, &f.Required, &f.Options, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fields, nil
}

func (r *customFieldRepositoryImpl) Update(ctx context.Context, f organization.CustomField) (organization.CustomField, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		UPDATE custom_fields SET name = $1, kind = $2, required = $3, options = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`, f.Name, f.Kind, f.Required, f.Options, f.ID).Scan(&f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.CustomField{}, organization.ErrCustomFieldNotFound
		}
		return organization.CustomField{}, fmt.Errorf("update custom field %s: %w", f.ID, err)
	}
	return f, nil
}

func (r *customFieldRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM custom_fields WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return organization.ErrCustomFieldNotFound
	}
	return nil
}
