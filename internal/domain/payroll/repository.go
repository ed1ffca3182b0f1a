package payroll

import "context"

type ConfigRepository interface {
	GetByOrganization(ctx context.Context, organizationID string) (SalaryConfig, error)
	Save(ctx context.Context, cfg SalaryConfig) (SalaryConfig, error)
}
