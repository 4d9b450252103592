package timetracking

import "time"

type ClockInResponse struct {
	Timestamp time.Time `json:"timestamp"`
}

type ClockOutResponse struct {
	Timestamp      time.Time `json:"timestamp"`
	TotalWorkHours float64   `json:"totalWorkHours"`
}

type BreakInResponse struct {
	Timestamp time.Time `json:"timestamp"`
}

type BreakOutResponse struct {
	Timestamp  time.Time `json:"timestamp"`
	BreakHours float64   `json:"breakHours"`
}

// TodayStatusResponse aggregates all of today's sessions. When a session is
// open its live work/break time is projected into the totals without being
// persisted.
type TodayStatusResponse struct {
	ClockedIn       bool       `json:"clockedIn"`
	ClockedOut      bool       `json:"clockedOut"`
	OnBreak         bool       `json:"onBreak"`
	ClockInTime     *time.Time `json:"clockInTime"`
	ClockOutTime    *time.Time `json:"clockOutTime"`
	BreakInTime     *time.Time `json:"breakInTime"`
	BreakOutTime    *time.Time `json:"breakOutTime"`
	TotalWorkHours  float64    `json:"totalWorkHours"`
	TotalBreakHours float64    `json:"totalBreakHours"`
	SessionsCount   int        `json:"sessionsCount"`
}

// AttendanceDay is one calendar day's aggregate across its sessions.
// ClockOutTime is null while any session that day is still open.
type AttendanceDay struct {
	Date            string     `json:"date"`
	ClockInTime     *time.Time `json:"clock_in_time"`
	ClockOutTime    *time.Time `json:"clock_out_time"`
	TotalWorkHours  float64    `json:"total_work_hours"`
	TotalBreakHours float64    `json:"total_break_hours"`
}
