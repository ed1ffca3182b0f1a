package employee

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/workforcelab/hrms-backend-go/internal/domain/employee"
	"github.com/workforcelab/hrms-backend-go/internal/domain/user"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/cache"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/database"
	"github.com/workforcelab/hrms-backend-go/internal/repository/postgresql"
)

// listCacheTTL keeps list reads fresh enough for grid paging while
// absorbing repeated fetches.
const listCacheTTL = 30 * time.Second

type Service struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
	cache *cache.Cache
}

func NewService(db *database.DB, employeeRepository employee.EmployeeRepository, userRepository user.UserRepository, c *cache.Cache) *Service {
	return &Service{
		db:                 db,
		EmployeeRepository: employeeRepository,
		UserRepository:     userRepository,
		cache:              c,
	}
}

// Create inserts the employee record together with its login account.
// The initial password is the employee code; the account is flagged
// for a forced change on first login.
func (s *Service) Create(ctx context.Context, organizationID string, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	e := employee.Employee{
		OrganizationID: organizationID,
		EmployeeCode:   req.EmployeeCode,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		BranchID:       req.BranchID,
		DepartmentID:   req.DepartmentID,
		ShiftID:        req.ShiftID,
		Designation:    req.Designation,
		HireDate:       hireDate,
		Status:         employee.StatusActive,
		Salary:         req.Salary,
		CustomFields:   req.CustomFields,
	}

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.EmployeeCode), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash initial password: %w", err)
		}
		passwordHash := string(hash)

		u, err := s.UserRepository.Create(txCtx, user.User{
			OrganizationID: &organizationID,
			Email:          req.Email,
			PasswordHash:   &passwordHash,
			Role:           user.RoleEmployee,
			IsFirstLogin:   true,
		})
		if err != nil {
			return err
		}

		e.UserID = &u.ID
		e, err = s.EmployeeRepository.Create(txCtx, e)
		return err
	})
	if err != nil {
		return employee.Employee{}, err
	}

	s.invalidateLists(ctx, organizationID)
	return e, nil
}

func (s *Service) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

// List serves from the short-TTL cache when possible. Cache failures
// degrade to the database silently.
func (s *Service) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	key := s.listKey(filter)
	if key != "" {
		var cached struct {
			Employees []employee.Employee `json:"employees"`
			Total     int64               `json:"total"`
		}
		if s.cache.GetJSON(ctx, key, &cached) {
			return cached.Employees, cached.Total, nil
		}
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	if key != "" {
		s.cache.SetJSON(ctx, key, struct {
			Employees []employee.Employee `json:"employees"`
			Total     int64               `json:"total"`
		}{employees, total}, listCacheTTL)
	}

	return employees, total, nil
}

func (s *Service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Phone != nil {
		e.Phone = req.Phone
	}
	if req.BranchID != nil {
		e.BranchID = req.BranchID
	}
	if req.DepartmentID != nil {
		e.DepartmentID = req.DepartmentID
	}
	if req.ShiftID != nil {
		e.ShiftID = req.ShiftID
	}
	if req.Designation != nil {
		e.Designation = req.Designation
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	if req.Salary != nil {
		e.Salary = *req.Salary
	}
	if req.CustomFields != nil {
		e.CustomFields = req.CustomFields
	}

	updated, err := s.EmployeeRepository.Update(ctx, e)
	if err != nil {
		return employee.Employee{}, err
	}

	s.invalidateLists(ctx, e.OrganizationID)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateLists(ctx, e.OrganizationID)
	return nil
}

func (s *Service) listKey(filter employee.ListFilter) string {
	if !s.cache.Available() {
		return ""
	}
	return cache.ListKey("employees", map[string]string{
		"org":        filter.OrganizationID,
		"search":     filter.Search,
		"department": filter.DepartmentID,
		"branch":     filter.BranchID,
		"status":     filter.Status,
		"page":       strconv.Itoa(filter.Page),
		"limit":      strconv.Itoa(filter.Limit),
	})
}

func (s *Service) invalidateLists(ctx context.Context, organizationID string) {
	if !s.cache.Available() {
		return
	}
	s.cache.InvalidatePattern(ctx, "list:employees:*org="+organizationID+"*")
}
