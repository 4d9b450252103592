package timetracking

import "errors"

var (
	ErrAlreadyClockedIn = errors.New("You are already clocked in. Please clock out first.")
	ErrNoOpenSession    = errors.New("No active session found. Please clock in first.")
	ErrAlreadyOnBreak   = errors.New("Already on break. Please break out first")
	ErrNotOnBreak       = errors.New("Not on break. Please break in first")
)
