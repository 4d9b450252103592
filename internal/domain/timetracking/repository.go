package timetracking

import (
	"context"
	"time"
)

// SessionRepository - interface for time_tracking table.
// GetOpenByUserAndDate returns ErrNoOpenSession when no open session exists.
// Create returns ErrAlreadyClockedIn when an open session for the user and
// date already exists, and SetBreakIn returns ErrAlreadyOnBreak when the
// session is already on an unfinished break; both checks hold under
// concurrent callers.
type SessionRepository interface {
	Create(ctx context.Context, s Session) (Session, error)
	GetOpenByUserAndDate(ctx context.Context, userID, tenantID, date string) (Session, error)
	ListByUserAndDate(ctx context.Context, userID, tenantID, date string) ([]Session, error)
	SetBreakIn(ctx context.Context, id string, at time.Time) error
	SetBreakOut(ctx context.Context, id string, at time.Time, totalBreakHours float64) error
	Close(ctx context.Context, id string, at time.Time, workHours, breakHours float64) error
	ListDailySummary(ctx context.Context, userID, tenantID, startDate, endDate string, limit int) ([]AttendanceDay, error)
}
