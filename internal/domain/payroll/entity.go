package payroll

// PFBasis names the wage base used to decide PF applicability. The
// upstream system used both bases on different pages; the statutory
// rule is still unconfirmed, so both remain selectable.
type PFBasis string

const (
	PFBasisProRated PFBasis = "PRO_RATED_BASE" // default
	PFBasisFull     PFBasis = "FULL_BASE"
)

// ESIBasis names the wage base used for the ESI deduction and its
// threshold check. Same situation as PFBasis.
type ESIBasis string

const (
	ESIBasisGross   ESIBasis = "GROSS"     // base + hra + conveyance, default
	ESIBasisBaseHRA ESIBasis = "BASE_HRA"  // base + hra only
)

// CTCPolicy selects how cost-to-company is computed. Full-month is the
// canonical reading: CTC is the contractual employer cost and does not
// move with attendance. The pro-rated policy reproduces the other
// upstream call site.
type CTCPolicy string

const (
	CTCFullMonth CTCPolicy = "FULL_MONTH" // default
	CTCProRated  CTCPolicy = "PRO_RATED"
)

// DefaultProfessionalTax applies when the organization has not
// configured a flat amount.
const DefaultProfessionalTax = 200.0

// DefaultConfig carries the usual statutory percentages, served until
// an organization saves its own configuration.
func DefaultConfig(organizationID string) SalaryConfig {
	return SalaryConfig{
		OrganizationID: organizationID,
		PFEmployeePct:  12,
		PFEmployerPct:  3.67,
		PFPensionPct:   8.33,
		PFThresholdMin: 0,
		PFThresholdMax: 15000,

		ESIEmployeePct:  0.75,
		ESIEmployerPct:  3.25,
		ESIThresholdMin: 0,
		ESIThresholdMax: 21000,

		ProfessionalTax: DefaultProfessionalTax,

		PFBasis:   PFBasisProRated,
		ESIBasis:  ESIBasisGross,
		CTCPolicy: CTCFullMonth,
	}
}

// SalaryConfig is the organization-level statutory configuration. All
// percentages are non-negative; each threshold pair defines an
// inclusive applicability window.
type SalaryConfig struct {
	ID             string  `json:"id,omitempty"`
	OrganizationID string  `json:"organizationId,omitempty"`
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

// SalaryInput is the per-employee slice of a salary run. Derived from
// the employee record and the attendance ledger, never persisted.
type SalaryInput struct {
	Base           float64 `json:"base"`
	HRA            float64 `json:"hra"`
	Conveyance     float64 `json:"conveyance"`
	AttendanceDays float64 `json:"attendanceDays"`
	TotalDays      float64 `json:"totalDays"`
}

// Breakdown is the result of one salary computation. Components keep
// full float64 precision; round only at the display edge.
type Breakdown struct {
	ProRatedBase       float64 `json:"proRatedBase"`
	ProRatedHRA        float64 `json:"proRatedHra"`
	ProRatedConveyance float64 `json:"proRatedConveyance"`
	GrossProRated      float64 `json:"grossProRated"`

	EmployeePF  float64 `json:"employeePf"`
	EmployeeESI float64 `json:"employeeEsi"`

	EmployerPF  float64 `json:"employerPf"`
	EmployerESI float64 `json:"employerEsi"`
	PensionFund float64 `json:"pensionFund"`

	ProfessionalTax float64 `json:"professionalTax"`
	NetPayable      float64 `json:"netPayable"`
	CTC             float64 `json:"ctc"`
}
