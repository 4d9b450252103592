package timetracking

import "time"

// Session is one clock-in-to-clock-out interval. A user may have several
// sessions per calendar day but at most one open one (clock_out_time null).
// Only a single break is tracked by field within a session; a later break
// overwrites the timestamps while its duration accumulates in TotalBreakHours.
type Session struct {
	ID       string
	UserID   string
	TenantID string
	Date     string // calendar day key, YYYY-MM-DD

	ClockInTime  time.Time
	ClockOutTime *time.Time
	BreakInTime  *time.Time
	BreakOutTime *time.Time

	TotalWorkHours  float64
	TotalBreakHours float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open reports whether the session has not been clocked out yet.
func (s Session) Open() bool {
	return s.ClockOutTime == nil
}

// OnBreak reports whether the session has a started break that has not ended.
func (s Session) OnBreak() bool {
	return s.BreakInTime != nil && s.BreakOutTime == nil
}
