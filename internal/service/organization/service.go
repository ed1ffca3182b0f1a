package organization

import (
	"context"

	"github.com/workforcelab/hrms-backend-go/internal/domain/attendance"
	"github.com/workforcelab/hrms-backend-go/internal/domain/organization"
)

type Service struct {
	organization.OrganizationRepository
	organization.BranchRepository
	organization.DepartmentRepository
	organization.ShiftRepository
	organization.CustomFieldRepository
}

func NewService(
	organizationRepository organization.OrganizationRepository,
	branchRepository organization.BranchRepository,
	departmentRepository organization.DepartmentRepository,
	shiftRepository organization.ShiftRepository,
	customFieldRepository organization.CustomFieldRepository,
) *Service {
	return &Service{
		OrganizationRepository: organizationRepository,
		BranchRepository:       branchRepository,
		DepartmentRepository:   departmentRepository,
		ShiftRepository:        shiftRepository,
		CustomFieldRepository:  customFieldRepository,
	}
}

func (s *Service) Get(ctx context.Context, id string) (organization.Organization, error) {
	return s.OrganizationRepository.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, req organization.SaveOrganizationRequest) (organization.Organization, error) {
	org, err := s.OrganizationRepository.GetByID(ctx, id)
	if err != nil {
		return organization.Organization{}, err
	}

	org.Name = req.Name
	if req.Address != nil {
		org.Address = req.Address
	}
	updated, err := s.OrganizationRepository.Update(ctx, org)
	if err != nil {
		return organization.Organization{}, err
	}

	if req.Timing != nil {
		if err := s.SaveTiming(ctx, id, *req.Timing); err != nil {
			return organization.Organization{}, err
		}
		updated.Timing = *req.Timing
	}
	return updated, nil
}

// SaveTiming persists a new timing configuration. Ordering is enforced
// here so saved configurations are always usable by the classifier.
func (s *Service) SaveTiming(ctx context.Context, organizationID string, timing attendance.TimingConfig) error {
	if err := timing.Validate(); err != nil {
		return err
	}
	return s.OrganizationRepository.UpdateTiming(ctx, organizationID, timing)
}

// Branches

func (s *Service) CreateBranch(ctx context.Context, organizationID string, req organization.SaveBranchRequest) (organization.Branch, error) {
	return s.BranchRepository.Create(ctx, organization.Branch{
		OrganizationID: organizationID,
		Name:           req.Name,
		Address:        req.Address,
	})
}

func (s *Service) ListBranches(ctx context.Context, organizationID string) ([]organization.Branch, error) {
	return s.BranchRepository.ListByOrganization(ctx, organizationID)
}

func (s *Service) UpdateBranch(ctx context.Context, id string, req organization.SaveBranchRequest) (organization.Branch, error) {
	b, err := s.BranchRepository.GetByID(ctx, id)
	if err != nil {
		return organization.Branch{}, err
	}
	b.Name = req.Name
	if req.Address != nil {
		b.Address = req.Address
	}
	return s.BranchRepository.Update(ctx, b)
}

func (s *Service) DeleteBranch(ctx context.Context, id string) error {
	return s.BranchRepository.Delete(ctx, id)
}

// Departments

func (s *Service) CreateDepartment(ctx context.Context, organizationID string, req organization.SaveDepartmentRequest) (organization.Department, error) {
	return s.DepartmentRepository.Create(ctx, organization.Department{
		OrganizationID: organizationID,
		Name:           req.Name,
	})
}

func (s *Service) ListDepartments(ctx context.Context, organizationID string) ([]organization.Department, error) {
	return s.DepartmentRepository.ListByOrganization(ctx, organizationID)
}

func (s *Service) UpdateDepartment(ctx context.Context, id string, req organization.SaveDepartmentRequest) (organization.Department, error) {
	d, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return organization.Department{}, err
	}
	d.Name = req.Name
	return s.DepartmentRepository.Update(ctx, d)
}

func (s *Service) DeleteDepartment(ctx context.Context, id string) error {
	return s.DepartmentRepository.Delete(ctx, id)
}

// Shifts

func (s *Service) CreateShift(ctx context.Context, organizationID string, req organization.SaveShiftRequest) (organization.Shift, error) {
	return s.ShiftRepository.Create(ctx, organization.Shift{
		OrganizationID: organizationID,
		Name:           req.Name,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
	})
}

func (s *Service) ListShifts(ctx context.Context, organizationID string) ([]organization.Shift, error) {
	return s.ShiftRepository.ListByOrganization(ctx, organizationID)
}

func (s *Service) UpdateShift(ctx context.Context, id string, req organization.SaveShiftRequest) (organization.Shift, error) {
	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return organization.Shift{}, err
	}
	sh.Name = req.Name
	sh.StartTime = req.StartTime
	sh.EndTime = req.EndTime
	return s.ShiftRepository.Update(ctx, sh)
}

func (s *Service) DeleteShift(ctx context.Context, id string) error {
	return s.ShiftRepository.Delete(ctx, id)
}

// Custom fields

func (s *Service) CreateCustomField(ctx context.Context, organizationID string, req organization.SaveCustomFieldRequest) (organization.CustomField, error) {
	return s.CustomFieldRepository.Create(ctx, organization.CustomField{
		OrganizationID: organizationID,
		Name:           req.Name,
		Kind:           req.Kind,
		Required:       req.Required,
		Options:        req.Options,
	})
}

func (s *Service) ListCustomFields(ctx context.Context, organizationID string) ([]organization.CustomField, error) {
	return s.CustomFieldRepository.ListByOrganization(ctx, organizationID)
}

func (s *Service) UpdateCustomField(ctx context.Context, id string, req organization.SaveCustomFieldRequest) (organization.CustomField, error) {
	f, err := s.CustomFieldRepository.GetByID(ctx, id)
	if err != nil {
		return organization.CustomField{}, err
	}
	f.Name = req.Name
	f.Kind = req.Kind
	f.Required = req.Required
	f.Options = req.Options
	return s.CustomFieldRepository.Update(ctx, f)
}

func (s *Service) DeleteCustomField(ctx context.Context, id string) error {
	return s.CustomFieldRepository.Delete(ctx, id)
}
