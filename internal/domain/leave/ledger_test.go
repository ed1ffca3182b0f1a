package leave

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBalance() Balance {
	return Balance{
		EmployeeID: "emp-1",
		Year:       2026,
		Allocated: map[Type]float64{
			TypeCasual:    10,
			TypeSick:      7,
			TypePrivilege: 15,
		},
		Used: map[Type]float64{
			TypeCasual:    5,
			TypePrivilege: 15,
		},
		CarryForward: map[Type]float64{
			TypePrivilege: 3,
		},
	}
}

func TestBalance_Available(t *testing.T) {
	avail := testBalance().Available()

	assert.Equal(t, 5.0, avail[TypeCasual])     // 10 + 0 - 5
	assert.Equal(t, 7.0, avail[TypeSick])       // 7 + 0 - 0
	assert.Equal(t, 3.0, avail[TypePrivilege])  // 15 + 3 - 15
	assert.True(t, math.IsInf(avail[TypeUnpaid], 1))
}

func TestCheckSufficiency_Blocks(t *testing.T) {
	bal := testBalance()

	err := CheckSufficiency(bal, TypeCasual, 6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientBalance))

	var ib *InsufficientBalanceError
	require.True(t, errors.As(err, &ib))
	assert.Equal(t, 6.0, ib.Requested)
	assert.Equal(t, 5.0, ib.Available)
	assert.Contains(t, ib.Error(), "CL")
}

func TestCheckSufficiency_Passes(t *testing.T) {
	bal := testBalance()
	assert.NoError(t, CheckSufficiency(bal, TypeCasual, 5))
	assert.NoError(t, CheckSufficiency(bal, TypeSick, 1))
}

func TestCheckSufficiency_LWPNeverBlocked(t *testing.T) {
	bal := testBalance()
	assert.NoError(t, CheckSufficiency(bal, TypeUnpaid, 6))
	assert.NoError(t, CheckSufficiency(bal, TypeUnpaid, 365))
}

func TestCheckSufficiency_ELAlias(t *testing.T) {
	bal := testBalance()
	assert.NoError(t, CheckSufficiency(bal, Type("EL"), 3))
	assert.Error(t, CheckSufficiency(bal, Type("EL"), 4))
}

func TestCheckSufficiency_Invalid(t *testing.T) {
	bal := testBalance()
	assert.ErrorIs(t, CheckSufficiency(bal, TypeCasual, 0), ErrInvalidDays)
	assert.ErrorIs(t, CheckSufficiency(bal, TypeCasual, -1), ErrInvalidDays)
	assert.ErrorIs(t, CheckSufficiency(bal, Type("XX"), 1), ErrUnknownType)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusApproved))
	assert.True(t, CanTransition(StatusPending, StatusRejected))
	assert.True(t, CanTransition(StatusPending, StatusCancelled))
	assert.False(t, CanTransition(StatusApproved, StatusCancelled))
	assert.False(t, CanTransition(StatusRejected, StatusApproved))
	assert.False(t, CanTransition(StatusCancelled, StatusPending))
}
