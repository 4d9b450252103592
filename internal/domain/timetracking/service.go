package timetracking

import "context"

type TimeTrackingService interface {
	ClockIn(ctx context.Context, userID, tenantID string) (ClockInResponse, error)
	ClockOut(ctx context.Context, userID, tenantID string) (ClockOutResponse, error)
	BreakIn(ctx context.Context, userID, tenantID string) (BreakInResponse, error)
	BreakOut(ctx context.Context, userID, tenantID string) (BreakOutResponse, error)
	TodayStatus(ctx context.Context, userID, tenantID string) (TodayStatusResponse, error)
	Attendance(ctx context.Context, userID, tenantID, startDate, endDate string) ([]AttendanceDay, error)
}
