package organization

import (
	"context"

	"github.com/workforcelab/hrms-backend-go/internal/domain/attendance"
)

type OrganizationRepository interface {
	GetByID(ctx context.Context, id string) (Organization, error)
	Update(ctx context.Context, org Organization) (Organization, error)
	UpdateTiming(ctx context.Context, id string, timing attendance.TimingConfig) error
}

type BranchRepository interface {
	Create(ctx context.Context, b Branch) (Branch, error)
	GetByID(ctx context.Context, id string) (Branch, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]Branch, error)
	Update(ctx context.Context, b Branch) (Branch, error)
	Delete(ctx context.Context, id string) error
}

type DepartmentRepository interface {
	Create(ctx context.Context, d Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]Department, error)
	Update(ctx context.Context, d Department) (Department, error)
	Delete(ctx context.Context, id string) error
}

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]Shift, error)
	Update(ctx context.Context, s Shift) (Shift, error)
	Delete(ctx context.Context, id string) error
}

type CustomFieldRepository interface {
	Create(ctx context.Context, f CustomField) (CustomField, error)
	GetByID(ctx context.Context, id string) (CustomField, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]CustomField, error)
	Update(ctx context.Context, f CustomField) (CustomField, error)
	Delete(ctx context.Context, id string) error
}
