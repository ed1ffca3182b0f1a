package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testConfig() *SalaryConfig {
	return &SalaryConfig{
		PFEmployeePct:   12,
		PFEmployerPct:   3.67,
		PFPensionPct:    8.33,
		PFThresholdMin:  0,
		PFThresholdMax:  15000,
		ESIEmployeePct:  0.75,
		ESIEmployerPct:  3.25,
		ESIThresholdMin: 0,
		ESIThresholdMax: 21000,
		ProfessionalTax: 200,
	}
}

func TestCompute_ZeroTotalDaysGuard(t *testing.T) {
	b := Compute(SalaryInput{Base: 10000, HRA: 4000, Conveyance: 1600, AttendanceDays: 20, TotalDays: 0}, testConfig())
	assert.Equal(t, Breakdown{}, b)

	// Negative totals behave the same as zero
	b = Compute(SalaryInput{Base: 10000, TotalDays: -5, AttendanceDays: 2}, testConfig())
	assert.Equal(t, Breakdown{}, b)
}

func TestCompute_ProRation(t *testing.T) {
	in := SalaryInput{Base: 12000, HRA: 6000, Conveyance: 1500, AttendanceDays: 15, TotalDays: 30}
	b := Compute(in, testConfig())

	assert.InDelta(t, 6000, b.ProRatedBase, 1e-9)
	assert.InDelta(t, 3000, b.ProRatedHRA, 1e-9)
	assert.InDelta(t, 750, b.ProRatedConveyance, 1e-9)
	assert.InDelta(t, 9750, b.GrossProRated, 1e-9)
}

func TestCompute_FullAttendance(t *testing.T) {
	in := SalaryInput{Base: 10000, HRA: 4000, Conveyance: 1600, AttendanceDays: 30, TotalDays: 30}
	b := Compute(in, testConfig())

	assert.InDelta(t, 15600, b.GrossProRated, 1e-9)
	assert.InDelta(t, 1200, b.EmployeePF, 1e-9)    // 12% of 10000
	assert.InDelta(t, 117, b.EmployeeESI, 1e-9)    // 0.75% of 15600
	assert.InDelta(t, 200, b.ProfessionalTax, 1e-9)
	assert.InDelta(t, 15600-1200-117-200, b.NetPayable, 1e-9)
}

func TestCompute_PFThresholdGating(t *testing.T) {
	cfg := testConfig()
	cfg.PFThresholdMin = 5000
	cfg.PFThresholdMax = 15000

	// Pro-rated base below the window: no PF at all
	b := Compute(SalaryInput{Base: 8000, AttendanceDays: 10, TotalDays: 30}, cfg)
	assert.Zero(t, b.EmployeePF)
	assert.Zero(t, b.EmployerPF)
	assert.Zero(t, b.PensionFund)

	// Inside the window: strictly positive
	b = Compute(SalaryInput{Base: 8000, AttendanceDays: 30, TotalDays: 30}, cfg)
	assert.Greater(t, b.EmployeePF, 0.0)
	assert.Greater(t, b.EmployerPF, 0.0)
	assert.Greater(t, b.PensionFund, 0.0)

	// Above the window: no PF
	b = Compute(SalaryInput{Base: 40000, AttendanceDays: 30, TotalDays: 30}, cfg)
	assert.Zero(t, b.EmployeePF)

	// Boundary values are inclusive on both ends
	b = Compute(SalaryInput{Base: 15000, AttendanceDays: 30, TotalDays: 30}, cfg)
	assert.InDelta(t, 1800, b.EmployeePF, 1e-9)
	b = Compute(SalaryInput{Base: 5000, AttendanceDays: 30, TotalDays: 30}, cfg)
	assert.InDelta(t, 600, b.EmployeePF, 1e-9)
}

func TestCompute_ESIThresholdGating(t *testing.T) {
	cfg := testConfig()
	cfg.ESIThresholdMin = 0
	cfg.ESIThresholdMax = 21000

	// Gross above the ceiling: no ESI either side
	b := Compute(SalaryInput{Base: 20000, HRA: 8000, Conveyance: 2000, AttendanceDays: 30, TotalDays: 30}, cfg)
	assert.Zero(t, b.EmployeeESI)
	assert.Zero(t, b.EmployerESI)

	// Inside the ceiling: strictly positive
	b = Compute(SalaryInput{Base: 10000, HRA: 4000, Conveyance: 1600, AttendanceDays: 30, TotalDays: 30}, cfg)
	assert.Greater(t, b.EmployeeESI, 0.0)
	assert.Greater(t, b.EmployerESI, 0.0)
}

func TestCompute_ESIBasisVariants(t *testing.T) {
	in := SalaryInput{Base: 10000, HRA: 4000, Conveyance: 1600, AttendanceDays: 30, TotalDays: 30}

	gross := testConfig()
	gross.ESIBasis = ESIBasisGross
	bGross := Compute(in, gross)
	assert.InDelta(t, 15600*0.0075, bGross.EmployeeESI, 1e-9)

	baseHRA := testConfig()
	baseHRA.ESIBasis = ESIBasisBaseHRA
	bBaseHRA := Compute(in, baseHRA)
	assert.InDelta(t, 14000*0.0075, bBaseHRA.EmployeeESI, 1e-9)

	// The two bases materially change take-home pay
	assert.Greater(t, bBaseHRA.NetPayable, bGross.NetPayable)
}

func TestCompute_PFBasisVariants(t *testing.T) {
	// Full base 20000 is outside [0,15000]; pro-rated base 10000 is inside.
	cfg := testConfig()
	in := SalaryInput{Base: 20000, AttendanceDays: 15, TotalDays: 30}

	cfg.PFBasis = PFBasisProRated
	assert.Greater(t, Compute(in, cfg).EmployeePF, 0.0)

	cfg.PFBasis = PFBasisFull
	assert.Zero(t, Compute(in, cfg).EmployeePF)
}

func TestCompute_NetPayableClampedAtZero(t *testing.T) {
	b := Compute(SalaryInput{Base: 100, AttendanceDays: 1, TotalDays: 30}, testConfig())
	assert.Equal(t, 0.0, b.NetPayable)

	// Zero attendance: gross is zero, professional tax cannot push net negative
	b = Compute(SalaryInput{Base: 10000, AttendanceDays: 0, TotalDays: 30}, testConfig())
	assert.Equal(t, 0.0, b.NetPayable)
}

func TestCompute_NetMonotonicInAttendance(t *testing.T) {
	cfg := testConfig()
	in := SalaryInput{Base: 12000, HRA: 5000, Conveyance: 1600, TotalDays: 30}

	prev := -1.0
	for days := 0.0; days <= 30; days++ {
		in.AttendanceDays = days
		b := Compute(in, cfg)
		assert.GreaterOrEqual(t, b.NetPayable, prev, "net payable regressed at %v days", days)
		prev = b.NetPayable
	}
}

func TestCompute_MissingConfig(t *testing.T) {
	in := SalaryInput{Base: 12000, HRA: 6000, Conveyance: 1500, AttendanceDays: 20, TotalDays: 30}
	b := Compute(in, nil)

	assert.InDelta(t, 13000, b.GrossProRated, 1e-9)
	assert.Zero(t, b.EmployeePF)
	assert.Zero(t, b.EmployeeESI)
	assert.Zero(t, b.ProfessionalTax)
	assert.InDelta(t, 13000, b.NetPayable, 1e-9)
	assert.InDelta(t, 19500, b.CTC, 1e-9)
}

func TestCompute_CTCPolicies(t *testing.T) {
	in := SalaryInput{Base: 10000, HRA: 4000, Conveyance: 1600, AttendanceDays: 15, TotalDays: 30}

	full := testConfig()
	full.CTCPolicy = CTCFullMonth
	bFull := Compute(in, full)

	proRated := testConfig()
	proRated.CTCPolicy = CTCProRated
	bPro := Compute(in, proRated)

	// Policies diverge whenever attendance < total days
	assert.Greater(t, bFull.CTC, bPro.CTC)

	// Full-month CTC does not move with attendance
	in2 := in
	in2.AttendanceDays = 30
	assert.InDelta(t, bFull.CTC, Compute(in2, full).CTC, 1e-9)

	// Full-month CTC = full gross + employer contributions on full wages
	wantEmployerPF := 10000 * 3.67 / 100
	wantPension := 10000 * 8.33 / 100
	wantEmployerESI := 15600 * 3.25 / 100
	assert.InDelta(t, 15600+wantEmployerPF+wantPension+wantEmployerESI, bFull.CTC, 1e-9)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 118.0, Round(117.5))
	assert.Equal(t, 117.0, Round(117.4))
}
