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

type branchRepositoryImpl struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) organization.BranchRepository {
	return &branchRepositoryImpl{db: db}
}

func (r *branchRepositoryImpl) Create(ctx context.Context, b organization.Branch) (organization.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO branches (id, organization_id, name, address, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query, b.OrganizationID, b.Name, b.Address).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return organization.Branch{}, organization.ErrNameExists
		}
		return organization.Branch{}, fmt.Errorf("create branch: %w", err)
	}

	return b, nil
}

func (r *branchRepositoryImpl) GetByID(ctx context.Context, id string) (organization.Branch, error) {
	q := GetQuerier(ctx, r.db)

	var b organization.Branch
	err := q.QueryRow(ctx, `
		SELECT id, organization_id, name, address, created_at, updated_at
		FROM branches WHERE id = $1
	`, id).Scan(&b.ID, &b.OrganizationID, &b.Name, &b.Address, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Branch{}, organization.ErrBranchNotFound
		}
		return organization.Branch{}, err
	}
	return b, nil
}

func (r *branchRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]organization.Branch, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, organization_id, name, address, created_at, updated_at
		FROM branches WHERE organization_id = $1 ORDER BY name
	`, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []organization.Branch
	for rows.Next() {
		var b organization.Branch
		if err := rows.Scan(&b.ID, &b.OrganizationID, &b.Name, &b.Address, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return branches, nil
}

func (r *branchRepositoryImpl) Update(ctx context.Context, b organization.Branch) (organization.Branch, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		UPDATE branches SET name = $1, address = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`, b.Name, b.Address, b.ID).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Branch{}, organization.ErrBranchNotFound
		}
		return organization.Branch{}, fmt.Errorf("update branch %s: %w", b.ID, err)
	}
	return b, nil
}

func (r *branchRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return organization.ErrBranchNotFound
	}
	return nil
}
