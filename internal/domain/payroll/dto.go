package payroll

import (
	"github.com/workforcelab/hrms-backend-go/internal/pkg/validator"
)

type SaveConfigRequest struct {
	PFEmployeePct  float64 `json:"pfEmployeePct"`
	PFEmployerPct  float64 `json:"pfEmployerPct"`
	PFPensionPct   float64 `json:"pfPensionPct"`
	PFThresholdMin float64 `json:"pfThresholdMin"`
	PFThresholdMax float64 `json:"pfThresholdMax"`

	ESIEmployeePct  float64 `json:"esiEmployeePct"`
	ESIEmployerPct  float64 `json:"esiEmployerPct"`
	ESIThresholdMin float64 `json:"esiThresholdMin"`
	ESIThresholdMax float64 `json:"esiThresholdMax"`

	ProfessionalTax float64 `json:"professionalTax"`

	PFBasis   PFBasis   `json:"pfBasis,omitempty"`
	ESIBasis  ESIBasis  `json:"esiBasis,omitempty"`
	CTCPolicy CTCPolicy `json:"ctcPolicy,omitempty"`
}

func (r SaveConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	pcts := map[string]float64{
		"pfEmployeePct":  r.PFEmployeePct,
		"pfEmployerPct":  r.PFEmployerPct,
		"pfPensionPct":   r.PFPensionPct,
		"esiEmployeePct": r.ESIEmployeePct,
		"esiEmployerPct": r.ESIEmployerPct,
	}
	for field, pct := range pcts {
		if pct < 0 || pct > 100 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be between 0 and 100"})
		}
	}

	if r.PFThresholdMin < 0 || r.PFThresholdMax < r.PFThresholdMin {
		errs = append(errs, validator.ValidationError{Field: "pfThresholdMax", Message: "threshold window must be non-negative and ordered"})
	}
	if r.ESIThresholdMin < 0 || r.ESIThresholdMax < r.ESIThresholdMin {
		errs = append(errs, validator.ValidationError{Field: "esiThresholdMax", Message: "threshold window must be non-negative and ordered"})
	}
	if r.ProfessionalTax < 0 {
		errs = append(errs, validator.ValidationError{Field: "professionalTax", Message: "must not be negative"})
	}

	if r.PFBasis != "" && r.PFBasis != PFBasisProRated && r.PFBasis != PFBasisFull {
		errs = append(errs, validator.ValidationError{Field: "pfBasis", Message: "must be PRO_RATED_BASE or FULL_BASE"})
	}
	if r.ESIBasis != "" && r.ESIBasis != ESIBasisGross && r.ESIBasis != ESIBasisBaseHRA {
		errs = append(errs, validator.ValidationError{Field: "esiBasis", Message: "must be GROSS or BASE_HRA"})
	}
	if r.CTCPolicy != "" && r.CTCPolicy != CTCFullMonth && r.CTCPolicy != CTCProRated {
		errs = append(errs, validator.ValidationError{Field: "ctcPolicy", Message: "must be FULL_MONTH or PRO_RATED"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Config converts the validated request into a persistable config,
// filling variant defaults.
func (r SaveConfigRequest) Config(organizationID string) SalaryConfig {
	cfg := SalaryConfig{
		OrganizationID: organizationID,
		PFEmployeePct:  r.PFEmployeePct,
		PFEmployerPct:  r.PFEmployerPct,
		PFPensionPct:   r.PFPensionPct,
		PFThresholdMin: r.PFThresholdMin,
		PFThresholdMax: r.PFThresholdMax,

		ESIEmployeePct:  r.ESIEmployeePct,
		ESIEmployerPct:  r.ESIEmployerPct,
		ESIThresholdMin: r.ESIThresholdMin,
		ESIThresholdMax: r.ESIThresholdMax,

		ProfessionalTax: r.ProfessionalTax,

		PFBasis:   r.PFBasis,
		ESIBasis:  r.ESIBasis,
		CTCPolicy: r.CTCPolicy,
	}
	if cfg.PFBasis == "" {
		cfg.PFBasis = PFBasisProRated
	}
	if cfg.ESIBasis == "" {
		cfg.ESIBasis = ESIBasisGross
	}
	if cfg.CTCPolicy == "" {
		cfg.CTCPolicy = CTCFullMonth
	}
	return cfg
}

// PreviewRequest is an ad-hoc calculation, used by the salary form to
// show a live breakdown before anything is saved.
type PreviewRequest struct {
	Input SalaryInput `json:"input"`
}

func (r PreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Input.Base < 0 || r.Input.HRA < 0 || r.Input.Conveyance < 0 {
		errs = append(errs, validator.ValidationError{Field: "input", Message: "salary components must not be negative"})
	}
	if r.Input.TotalDays < 0 || r.Input.AttendanceDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "input", Message: "day counts must not be negative"})
	}
	if r.Input.AttendanceDays > r.Input.TotalDays {
		errs = append(errs, validator.ValidationError{Field: "input", Message: "attendanceDays must not exceed totalDays"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SheetRow is one employee line of a monthly salary sheet.
type SheetRow struct {
	EmployeeCode string    `json:"employeeCode"`
	EmployeeName string    `json:"employeeName"`
	Input        SalaryInput `json:"input"`
	Breakdown    Breakdown `json:"breakdown"`
}

// Sheet is a computed monthly run for an organization.
type Sheet struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Rows  []SheetRow `json:"rows"`
}
