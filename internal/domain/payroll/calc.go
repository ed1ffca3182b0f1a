package payroll

import "math"

// Compute derives a full salary breakdown from one employee's inputs
// and the organization's statutory configuration. It is pure and never
// panics: a non-positive TotalDays yields an all-zero breakdown, and a
// nil config yields pure pro-ration with zero deductions.
//
// This is the single computation path for both on-screen previews and
// persisted salary runs; previews may diverge from a later
// authoritative run only when the underlying data changed in between.
func Compute(in SalaryInput, cfg *SalaryConfig) Breakdown {
	if in.TotalDays <= 0 {
		return Breakdown{}
	}

	factor := in.AttendanceDays / in.TotalDays

	b := Breakdown{
		ProRatedBase:       in.Base * factor,
		ProRatedHRA:        in.HRA * factor,
		ProRatedConveyance: in.Conveyance * factor,
	}
	b.GrossProRated = b.ProRatedBase + b.ProRatedHRA + b.ProRatedConveyance

	if cfg != nil {
		pfWage := b.ProRatedBase
		if cfg.PFBasis == PFBasisFull {
			pfWage = in.Base
		}
		if inWindow(pfWage, cfg.PFThresholdMin, cfg.PFThresholdMax) {
			b.EmployeePF = b.ProRatedBase * cfg.PFEmployeePct / 100
			b.EmployerPF = b.ProRatedBase * cfg.PFEmployerPct / 100
			b.PensionFund = b.ProRatedBase * cfg.PFPensionPct / 100
		}

		esiWage := b.GrossProRated
		if cfg.ESIBasis == ESIBasisBaseHRA {
			esiWage = b.ProRatedBase + b.ProRatedHRA
		}
		if inWindow(esiWage, cfg.ESIThresholdMin, cfg.ESIThresholdMax) {
			b.EmployeeESI = esiWage * cfg.ESIEmployeePct / 100
			b.EmployerESI = esiWage * cfg.ESIEmployerPct / 100
		}

		b.ProfessionalTax = cfg.ProfessionalTax
	}

	b.NetPayable = math.Max(0, b.GrossProRated-b.EmployeePF-b.EmployeeESI-b.ProfessionalTax)

	switch {
	case cfg != nil && cfg.CTCPolicy == CTCProRated:
		b.CTC = b.GrossProRated + b.EmployerPF + b.EmployerESI + b.PensionFund
	default:
		// Full-month CTC: contractual employer cost, independent of
		// days worked. Contributions are recomputed on the full wage
		// bases with their own threshold checks.
		b.CTC = fullMonthCTC(in, cfg)
	}

	return b
}

func fullMonthCTC(in SalaryInput, cfg *SalaryConfig) float64 {
	full := in.Base + in.HRA + in.Conveyance
	if cfg == nil {
		return full
	}

	var employerPF, pension, employerESI float64
	if inWindow(in.Base, cfg.PFThresholdMin, cfg.PFThresholdMax) {
		employerPF = in.Base * cfg.PFEmployerPct / 100
		pension = in.Base * cfg.PFPensionPct / 100
	}

	esiWage := full
	if cfg.ESIBasis == ESIBasisBaseHRA {
		esiWage = in.Base + in.HRA
	}
	if inWindow(esiWage, cfg.ESIThresholdMin, cfg.ESIThresholdMax) {
		employerESI = esiWage * cfg.ESIEmployerPct / 100
	}

	return full + employerPF + employerESI + pension
}

func inWindow(v, min, max float64) bool {
	return v >= min && v <= max
}

// Round rounds a currency amount to the nearest whole unit for
// display. Chained calculations keep full precision.
func Round(v float64) float64 {
	return math.Round(v)
}
