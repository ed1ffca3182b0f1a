package attendance

import "errors"

var (
	ErrRecordNotFound     = errors.New("attendance record not found")
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrAlreadyProcessed   = errors.New("attendance record already processed")
	ErrReasonRequired     = errors.New("rejection reason is required")
	ErrNothingToApprove   = errors.New("no pending records supplied")
	ErrInvalidCheckInTime = errors.New("invalid check-in time")
)
