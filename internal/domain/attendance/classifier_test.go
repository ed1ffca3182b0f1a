package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		panic(err)
	}
	return t
}

func TestClassify_BoundaryExactness(t *testing.T) {
	cfg := TimingConfig{
		FullDayBefore: "10:00",
		LateBefore:    "11:00",
		HalfDayBefore: "14:00",
	}

	tests := []struct {
		clock string
		want  Status
	}{
		{"00:00", StatusOnTime},
		{"09:59", StatusOnTime},
		{"10:00", StatusLate}, // boundary belongs to the stricter bucket
		{"10:59", StatusLate},
		{"11:00", StatusHalfDay},
		{"13:59", StatusHalfDay},
		{"14:00", StatusAbsent},
		{"23:59", StatusAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(at(tt.clock), cfg))
		})
	}
}

func TestClassify_GraceExtendsFullDayOnly(t *testing.T) {
	cfg := TimingConfig{
		FullDayBefore:      "10:00",
		LateBefore:         "11:00",
		HalfDayBefore:      "14:00",
		GracePeriodEnabled: true,
		GracePeriodMinutes: 15,
	}

	assert.Equal(t, StatusOnTime, Classify(at("10:14"), cfg))
	assert.Equal(t, StatusLate, Classify(at("10:15"), cfg))
	// Later cutoffs are untouched by grace
	assert.Equal(t, StatusHalfDay, Classify(at("11:00"), cfg))
	assert.Equal(t, StatusAbsent, Classify(at("14:00"), cfg))
}

func TestClassify_GraceDisabledIgnoresMinutes(t *testing.T) {
	cfg := TimingConfig{
		FullDayBefore:      "10:00",
		LateBefore:         "11:00",
		HalfDayBefore:      "14:00",
		GracePeriodEnabled: false,
		GracePeriodMinutes: 30,
	}
	assert.Equal(t, StatusLate, Classify(at("10:00"), cfg))
}

func TestTimingConfig_Validate(t *testing.T) {
	valid := TimingConfig{FullDayBefore: "10:00", LateBefore: "11:00", HalfDayBefore: "14:00"}
	require.NoError(t, valid.Validate())

	// Equal cutoffs are allowed by the ordering rule
	equal := TimingConfig{FullDayBefore: "10:00", LateBefore: "10:00", HalfDayBefore: "10:00"}
	require.NoError(t, equal.Validate())

	outOfOrder := TimingConfig{FullDayBefore: "11:00", LateBefore: "10:00", HalfDayBefore: "14:00"}
	assert.Error(t, outOfOrder.Validate())

	malformed := TimingConfig{FullDayBefore: "25:00", LateBefore: "11:00", HalfDayBefore: "14:00"}
	assert.Error(t, malformed.Validate())

	negativeGrace := TimingConfig{FullDayBefore: "10:00", LateBefore: "11:00", HalfDayBefore: "14:00", GracePeriodMinutes: -5}
	assert.Error(t, negativeGrace.Validate())
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(ApprovalPending, ApprovalApproved))
	assert.True(t, CanTransition(ApprovalPending, ApprovalRejected))

	// Terminal states never move
	assert.False(t, CanTransition(ApprovalApproved, ApprovalRejected))
	assert.False(t, CanTransition(ApprovalApproved, ApprovalPending))
	assert.False(t, CanTransition(ApprovalRejected, ApprovalApproved))
	assert.False(t, CanTransition(ApprovalPending, ApprovalPending))
}
