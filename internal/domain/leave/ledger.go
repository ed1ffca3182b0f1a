package leave

import "math"

// Balance is the per-employee, per-year leave ledger. The server is
// the source of truth for Available; clients recompute it only for
// instant form feedback.
type Balance struct {
	EmployeeID   string             `json:"employeeId"`
	Year         int                `json:"year"`
	Allocated    map[Type]float64   `json:"balances"`
	Used         map[Type]float64   `json:"used"`
	CarryForward map[Type]float64   `json:"carryForward"`
}

// Available derives allocated + carryForward - used for every type the
// ledger knows about. LWP is reported as unconstrained (+Inf) since
// unpaid leave has no balance ceiling.
func (b Balance) Available() map[Type]float64 {
	out := make(map[Type]float64)

	seen := func(m map[Type]float64) {
		for typ := range m {
			t := typ.Normalized()
			out[t] = b.Allocated[typ] + b.CarryForward[typ] - b.Used[typ]
		}
	}
	seen(b.Allocated)
	seen(b.CarryForward)
	seen(b.Used)

	out[TypeUnpaid] = math.Inf(1)
	return out
}

// AvailableFor returns the available balance for one type.
func (b Balance) AvailableFor(typ Type) float64 {
	t := typ.Normalized()
	if t == TypeUnpaid {
		return math.Inf(1)
	}
	return b.Allocated[t] + b.CarryForward[t] - b.Used[t]
}

// CheckSufficiency is the pre-submission gate: LWP always passes; any
// other type needs available >= requested. On the client this blocks
// the submit with an inline message; on the server it is re-run
// authoritatively before an application is created.
func CheckSufficiency(b Balance, typ Type, requestedDays float64) error {
	if requestedDays <= 0 {
		return ErrInvalidDays
	}
	if !typ.Known() {
		return ErrUnknownType
	}
	if typ.Normalized() == TypeUnpaid {
		return nil
	}
	if available := b.AvailableFor(typ); requestedDays > available {
		return &InsufficientBalanceError{Type: typ.Normalized(), Requested: requestedDays, Available: available}
	}
	return nil
}
