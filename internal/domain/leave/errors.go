package leave

import (
	"errors"
	"fmt"
)

var (
	ErrApplicationNotFound = errors.New("leave application not found")
	ErrBalanceNotFound     = errors.New("leave balance not found")
	ErrAlreadyProcessed    = errors.New("leave application already processed")
	ErrReasonRequired      = errors.New("rejection reason is required")
	ErrInvalidDays         = errors.New("requested days must be positive")
	ErrUnknownType         = errors.New("unknown leave type")
	ErrInvalidDateRange    = errors.New("fromDate must not be after toDate")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrNothingToDecide     = errors.New("no pending applications supplied")
)

// InsufficientBalanceError carries the shortfall so the caller can
// render an inline message.
type InsufficientBalanceError struct {
	Type      Type
	Requested float64
	Available float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s balance: requested %.1f, available %.1f", e.Type, e.Requested, e.Available)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}
