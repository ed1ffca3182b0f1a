package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/workforcelab/hrms-backend-go/internal/domain/attendance"
	"github.com/workforcelab/hrms-backend-go/internal/domain/employee"
	"github.com/workforcelab/hrms-backend-go/internal/domain/payroll"
)

type Service struct {
	payroll.ConfigRepository
	employee.EmployeeRepository
	attendance.AttendanceRepository
}

func NewService(
	configRepository payroll.ConfigRepository,
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
) *Service {
	return &Service{
		ConfigRepository:     configRepository,
		EmployeeRepository:   employeeRepository,
		AttendanceRepository: attendanceRepository,
	}
}

// GetConfig returns the organization's saved configuration, or the
// statutory defaults when none has been saved yet.
func (s *Service) GetConfig(ctx context.Context, organizationID string) (payroll.SalaryConfig, error) {
	cfg, err := s.ConfigRepository.GetByOrganization(ctx, organizationID)
	if err != nil {
		if errors.Is(err, payroll.ErrConfigNotFound) {
			return payroll.DefaultConfig(organizationID), nil
		}
		return payroll.SalaryConfig{}, err
	}
	return cfg, nil
}

func (s *Service) SaveConfig(ctx context.Context, organizationID string, req payroll.SaveConfigRequest) (payroll.SalaryConfig, error) {
	return s.ConfigRepository.Save(ctx, req.Config(organizationID))
}

// Preview computes a breakdown without persisting anything. Used by
// the salary form for a live preview.
func (s *Service) Preview(ctx context.Context, organizationID string, req payroll.PreviewRequest) (payroll.Breakdown, error) {
	cfg, err := s.GetConfig(ctx, organizationID)
	if err != nil {
		return payroll.Breakdown{}, err
	}
	return payroll.Compute(req.Input, &cfg), nil
}

// BuildSheet assembles the monthly salary run: one row per active
// employee, with attendance days drawn from the ledger.
func (s *Service) BuildSheet(ctx context.Context, organizationID string, year int, month time.Month) (payroll.Sheet, error) {
	cfg, err := s.GetConfig(ctx, organizationID)
	if err != nil {
		return payroll.Sheet{}, err
	}

	totalDays := float64(time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day())

	sheet := payroll.Sheet{Year: year, Month: int(month)}

	page := 1
	for {
		employees, total, err := s.EmployeeRepository.List(ctx, employee.ListFilter{
			OrganizationID: organizationID,
			Status:         string(employee.StatusActive),
			Page:           page,
			Limit:          200,
		})
		if err != nil {
			return payroll.Sheet{}, fmt.Errorf("list employees: %w", err)
		}

		for _, emp := range employees {
			days, err := s.AttendanceRepository.CountPresentDays(ctx, emp.ID, year, month)
			if err != nil {
				return payroll.Sheet{}, fmt.Errorf("count present days for %s: %w", emp.EmployeeCode, err)
			}

			input := payroll.SalaryInput{
				Base:           emp.Salary.Base,
				HRA:            emp.Salary.HRA,
				Conveyance:     emp.Salary.Conveyance,
				AttendanceDays: days,
				TotalDays:      totalDays,
			}
			sheet.Rows = append(sheet.Rows, payroll.SheetRow{
				EmployeeCode: emp.EmployeeCode,
				EmployeeName: emp.FullName,
				Input:        input,
				Breakdown:    payroll.Compute(input, &cfg),
			})
		}

		if int64(page)*200 >= total {
			break
		}
		page++
	}

	return sheet, nil
}
