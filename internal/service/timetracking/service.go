package timetracking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/peoplehub/hrms-backend-go/internal/domain/timetracking"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/clock"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

const dateLayout = "2006-01-02"

type TimeTrackingServiceImpl struct {
	txm database.TxManager
	timetracking.SessionRepository
	clk clock.Clock
}

func NewTimeTrackingService(
	txm database.TxManager,
	sessionRepository timetracking.SessionRepository,
	clk clock.Clock,
) timetracking.TimeTrackingService {
	return &TimeTrackingServiceImpl{
		txm:               txm,
		SessionRepository: sessionRepository,
		clk:               clk,
	}
}

// closeSessionTotals computes the hours persisted when a session closes, and
// doubles as the live projection formula for an open session. An open break is
// folded into the break total first. A negative work result is clamped to
// zero; see the open-question note in DESIGN.md before changing this.
func closeSessionTotals(s timetracking.Session, now time.Time) (workHours, breakHours float64) {
	breakHours = s.TotalBreakHours
	if s.OnBreak() {
		breakHours += now.Sub(*s.BreakInTime).Hours()
	}
	totalElapsed := now.Sub(s.ClockInTime).Hours()
	workHours = math.Max(0, totalElapsed-breakHours)
	return workHours, breakHours
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ClockIn implements timetracking.TimeTrackingService.
// The open-session check and the insert share a transaction so two concurrent
// clock-ins cannot both observe "no open session" and proceed.
func (s *TimeTrackingServiceImpl) ClockIn(ctx context.Context, userID, tenantID string) (timetracking.ClockInResponse, error) {
	now := s.clk.Now()
	today := now.Format(dateLayout)

	err := s.txm.RunInTx(ctx, func(ctx context.Context) error {
		_, err := s.SessionRepository.GetOpenByUserAndDate(ctx, userID, tenantID, today)
		if err == nil {
			return timetracking.ErrAlreadyClockedIn
		}
		if !errors.Is(err, timetracking.ErrNoOpenSession) {
			return fmt.Errorf("failed to check open session: %w", err)
		}

		// Each clock-in after a closed session starts a fresh row.
		_, err = s.SessionRepository.Create(ctx, timetracking.Session{
			UserID:      userID,
			TenantID:    tenantID,
			Date:        today,
			ClockInTime: now,
		})
		if err != nil {
			// The loser of a concurrent insert hits the partial unique
			// index and gets the taxonomy error back.
			if errors.Is(err, timetracking.ErrAlreadyClockedIn) {
				return err
			}
			return fmt.Errorf("failed to create session: %w", err)
		}
		return nil
	})
	if err != nil {
		return timetracking.ClockInResponse{}, err
	}

	return timetracking.ClockInResponse{Timestamp: now}, nil
}

// ClockOut implements timetracking.TimeTrackingService.
func (s *TimeTrackingServiceImpl) ClockOut(ctx context.Context, userID, tenantID string) (timetracking.ClockOutResponse, error) {
	now := s.clk.Now()
	today := now.Format(dateLayout)

	session, err := s.SessionRepository.GetOpenByUserAndDate(ctx, userID, tenantID, today)
	if err != nil {
		return timetracking.ClockOutResponse{}, err
	}

	workHours, breakHours := closeSessionTotals(session, now)

	if err := s.SessionRepository.Close(ctx, session.ID, now, workHours, breakHours); err != nil {
		return timetracking.ClockOutResponse{}, fmt.Errorf("failed to close session: %w", err)
	}

	return timetracking.ClockOutResponse{
		Timestamp:      now,
		TotalWorkHours: round2(workHours),
	}, nil
}

// BreakIn implements timetracking.TimeTrackingService.
func (s *TimeTrackingServiceImpl) BreakIn(ctx context.Context, userID, tenantID string) (timetracking.BreakInResponse, error) {
	now := s.clk.Now()
	today := now.Format(dateLayout)

	session, err := s.SessionRepository.GetOpenByUserAndDate(ctx, userID, tenantID, today)
	if err != nil {
		return timetracking.BreakInResponse{}, err
	}

	if session.OnBreak() {
		return timetracking.BreakInResponse{}, timetracking.ErrAlreadyOnBreak
	}

	// SetBreakIn re-checks the on-break state inside its UPDATE, so a
	// concurrent break-in cannot slip past the read above.
	if err := s.SessionRepository.SetBreakIn(ctx, session.ID, now); err != nil {
		if errors.Is(err, timetracking.ErrAlreadyOnBreak) {
			return timetracking.BreakInResponse{}, err
		}
		return timetracking.BreakInResponse{}, fmt.Errorf("failed to start break: %w", err)
	}

	return timetracking.BreakInResponse{Timestamp: now}, nil
}

// BreakOut implements timetracking.TimeTrackingService.
// The closed break's duration accumulates into total_break_hours; its
// timestamps stay on the row until a later break overwrites them.
func (s *TimeTrackingServiceImpl) BreakOut(ctx context.Context, userID, tenantID string) (timetracking.BreakOutResponse, error) {
	now := s.clk.Now()
	today := now.Format(dateLayout)

	session, err := s.SessionRepository.GetOpenByUserAndDate(ctx, userID, tenantID, today)
	if err != nil {
		if errors.Is(err, timetracking.ErrNoOpenSession) {
			return timetracking.BreakOutResponse{}, timetracking.ErrNotOnBreak
		}
		return timetracking.BreakOutResponse{}, err
	}

	if !session.OnBreak() {
		return timetracking.BreakOutResponse{}, timetracking.ErrNotOnBreak
	}

	elapsed := now.Sub(*session.BreakInTime).Hours()
	total := session.TotalBreakHours + elapsed

	if err := s.SessionRepository.SetBreakOut(ctx, session.ID, now, total); err != nil {
		return timetracking.BreakOutResponse{}, fmt.Errorf("failed to end break: %w", err)
	}

	return timetracking.BreakOutResponse{
		Timestamp:  now,
		BreakHours: round2(elapsed),
	}, nil
}

// TodayStatus implements timetracking.TimeTrackingService.
// Closed sessions contribute their persisted totals; an open session
// contributes a live projection that is returned but never written back.
func (s *TimeTrackingServiceImpl) TodayStatus(ctx context.Context, userID, tenantID string) (timetracking.TodayStatusResponse, error) {
	now := s.clk.Now()
	today := now.Format(dateLayout)

	sessions, err := s.SessionRepository.ListByUserAndDate(ctx, userID, tenantID, today)
	if err != nil {
		return timetracking.TodayStatusResponse{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	status := timetracking.TodayStatusResponse{
		SessionsCount: len(sessions),
	}
	if len(sessions) == 0 {
		return status, nil
	}

	var open *timetracking.Session
	for i := range sessions {
		if sessions[i].Open() {
			open = &sessions[i]
			continue
		}
		status.TotalWorkHours += sessions[i].TotalWorkHours
		status.TotalBreakHours += sessions[i].TotalBreakHours
	}

	if open != nil {
		liveWork, liveBreak := closeSessionTotals(*open, now)
		status.TotalWorkHours += liveWork
		status.TotalBreakHours += liveBreak

		status.ClockedIn = true
		status.OnBreak = open.OnBreak()
		clockIn := open.ClockInTime
		status.ClockInTime = &clockIn
		status.BreakInTime = open.BreakInTime
		status.BreakOutTime = open.BreakOutTime
	} else {
		status.ClockedOut = true
		status.ClockOutTime = sessions[0].ClockOutTime
	}

	status.TotalWorkHours = round2(status.TotalWorkHours)
	status.TotalBreakHours = round2(status.TotalBreakHours)

	return status, nil
}

// Attendance implements timetracking.TimeTrackingService.
func (s *TimeTrackingServiceImpl) Attendance(ctx context.Context, userID, tenantID, startDate, endDate string) ([]timetracking.AttendanceDay, error) {
	days, err := s.SessionRepository.ListDailySummary(ctx, userID, tenantID, startDate, endDate, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return days, nil
}
