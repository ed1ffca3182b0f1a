package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workforcelab/hrms-backend-go/internal/domain/payroll"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/database"
)

type salaryConfigRepositoryImpl struct {
	db *database.DB
}

func NewSalaryConfigRepository(db *database.DB) payroll.ConfigRepository {
	return &salaryConfigRepositoryImpl{db: db}
}

func (r *salaryConfigRepositoryImpl) GetByOrganization(ctx context.Context, organizationID string) (payroll.SalaryConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id,
			   pf_employee_pct, pf_employer_pct, pf_pension_pct, pf_threshold_min, pf_threshold_max,
			   esi_employee_pct, esi_employer_pct, esi_threshold_min, esi_threshold_max,
			   professional_tax, pf_basis, esi_basis, ctc_policy
		FROM salary_configs
		WHERE organization_id = $1
	`

	var cfg payroll.SalaryConfig
	err := q.QueryRow(ctx, query, organizationID).Scan(
		&cfg.ID, &cfg.OrganizationID,
		&cfg.PFEmployeePct, &cfg.PFEmployerPct, &cfg.PFPensionPct, &cfg.PFThresholdMin, &cfg.PFThresholdMax,
		&cfg.ESIEmployeePct, &cfg.ESIEmployerPct, &cfg.ESIThresholdMin, &cfg.ESIThresholdMax,
		&cfg.ProfessionalTax, &cfg.PFBasis, &cfg.ESIBasis, &cfg.CTCPolicy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryConfig{}, payroll.ErrConfigNotFound
		}
		return payroll.SalaryConfig{}, err
	}

	return cfg, nil
}

// Save upserts the single per-organization configuration row.
func (r *salaryConfigRepositoryImpl) Save(ctx context.Context, cfg payroll.SalaryConfig) (payroll.SalaryConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_configs (
			id, organization_id,
			pf_employee_pct, pf_employer_pct, pf_pension_pct, pf_threshold_min, pf_threshold_max,
			esi_employee_pct, esi_employer_pct, esi_threshold_min, esi_threshold_max,
			professional_tax, pf_basis, esi_basis, ctc_policy,
			created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1,
			$2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13, $14,
			NOW(), NOW()
		)
		ON CONFLICT (organization_id) DO UPDATE SET
			pf_employee_pct = EXCLUDED.pf_employee_pct,
			pf_employer_pct = EXCLUDED.pf_employer_pct,
			pf_pension_pct = EXCLUDED.pf_pension_pct,
			pf_threshold_min = EXCLUDED.pf_threshold_min,
			pf_threshold_max = EXCLUDED.pf_threshold_max,
			esi_employee_pct = EXCLUDED.esi_employee_pct,
			esi_employer_pct = EXCLUDED.esi_employer_pct,
			esi_threshold_min = EXCLUDED.esi_threshold_min,
			esi_threshold_max = EXCLUDED.esi_threshold_max,
			professional_tax = EXCLUDED.professional_tax,
			pf_basis = EXCLUDED.pf_basis,
			esi_basis = EXCLUDED.esi_basis,
			ctc_policy = EXCLUDED.ctc_policy,
			updated_at = NOW()
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		cfg.OrganizationID,
		cfg.PFEmployeePct, cfg.PFEmployerPct, cfg.PFPensionPct, cfg.PFThresholdMin, cfg.PFThresholdMax,
		cfg.ESIEmployeePct, cfg.ESIEmployerPct, cfg.ESIThresholdMin, cfg.ESIThresholdMax,
		cfg.ProfessionalTax, cfg.PFBasis, cfg.ESIBasis, cfg.CTCPolicy,
	).Scan(&cfg.ID)
	if err != nil {
		return payroll.SalaryConfig{}, fmt.Errorf("save salary config: %w", err)
	}

	return cfg, nil
}
