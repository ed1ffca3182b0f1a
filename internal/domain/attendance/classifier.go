package attendance

import (
	"fmt"
	"time"

	"github.com/workforcelab/hrms-backend-go/internal/pkg/validator"
)

// TimingConfig holds the organization's check-in cutoffs as "HH:MM"
// clock strings. The ordering FullDayBefore <= LateBefore <=
// HalfDayBefore is enforced when the configuration is saved, not at
// classification time.
type TimingConfig struct {
	FullDayBefore      string `json:"fullDayBefore"`
	LateBefore         string `json:"lateBefore"`
	HalfDayBefore      string `json:"halfDayBefore"`
	GracePeriodEnabled bool   `json:"gracePeriodEnabled"`
	GracePeriodMinutes int    `json:"gracePeriodMinutes"`
}

// Validate rejects unparseable or out-of-order cutoffs. Out-of-order
// values would make the classifier's interval chain meaningless, so
// they never reach it.
func (c TimingConfig) Validate() error {
	var errs validator.ValidationErrors

	fields := []struct {
		name  string
		value string
	}{
		{"fullDayBefore", c.FullDayBefore},
		{"lateBefore", c.LateBefore},
		{"halfDayBefore", c.HalfDayBefore},
	}
	for _, f := range fields {
		if !validator.IsValidClock(f.value) {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: "must be a valid HH:MM time"})
		}
	}
	if c.GracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "gracePeriodMinutes", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}

	full := clockMinutes(c.FullDayBefore)
	late := clockMinutes(c.LateBefore)
	half := clockMinutes(c.HalfDayBefore)
	if full > late || late > half {
		errs = append(errs, validator.ValidationError{
			Field:   "lateBefore",
			Message: fmt.Sprintf("cutoffs must be ordered: fullDayBefore (%s) <= lateBefore (%s) <= halfDayBefore (%s)", c.FullDayBefore, c.LateBefore, c.HalfDayBefore),
		})
		return errs
	}

	return nil
}

// Classify maps a check-in instant to its automatic status. The
// interval chain is left-closed: a check-in exactly on a cutoff lands
// in the stricter bucket, biasing toward flagging lateness. The grace
// period, when enabled, extends only the full-day cutoff.
//
// The server applies this rule once at check-in submission; clients
// may apply it for a live "status right now" preview and must agree on
// these boundary semantics.
func Classify(t time.Time, cfg TimingConfig) Status {
	minute := t.Hour()*60 + t.Minute()

	full := clockMinutes(cfg.FullDayBefore)
	if cfg.GracePeriodEnabled {
		full += cfg.GracePeriodMinutes
	}
	late := clockMinutes(cfg.LateBefore)
	half := clockMinutes(cfg.HalfDayBefore)

	switch {
	case minute < full:
		return StatusOnTime
	case minute < late:
		return StatusLate
	case minute < half:
		return StatusHalfDay
	default:
		return StatusAbsent
	}
}

// clockMinutes converts "HH:MM" to minutes since midnight. Callers
// validate the format first; malformed input counts as midnight.
func clockMinutes(clock string) int {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0
	}
	return h*60 + m
}
