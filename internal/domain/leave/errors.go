package leave

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidRange         = errors.New("Start date must be before end date")
	ErrUnknownLeaveType     = errors.New("Invalid leave type")
	ErrInsufficientBalance  = errors.New("Insufficient leave balance")
	ErrLeaveNotFound        = errors.New("Leave not found")
	ErrBalanceNotFound      = errors.New("Leave balance not found")
	ErrAlreadyFinalized     = errors.New("Leave already finalized")
	ErrAlreadyCancelled     = errors.New("Leave is already cancelled")
	ErrCannotCancelApproved = errors.New("Cannot cancel an approved leave. Please contact admin.")
)

// InsufficientBalanceError reports the number of days still available.
type InsufficientBalanceError struct {
	Available float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("Insufficient leave balance. Available: %s days", formatDays(e.Available))
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// AlreadyFinalizedError reports the status the leave already holds.
type AlreadyFinalizedError struct {
	Status LeaveStatus
}

func (e *AlreadyFinalizedError) Error() string {
	return fmt.Sprintf("Leave is already %s", e.Status)
}

func (e *AlreadyFinalizedError) Unwrap() error {
	return ErrAlreadyFinalized
}

func formatDays(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
