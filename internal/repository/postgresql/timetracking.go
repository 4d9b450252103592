package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplehub/hrms-backend-go/internal/domain/timetracking"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type sessionRepositoryImpl struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) timetracking.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

// Create implements timetracking.SessionRepository.
// The partial unique index on (user_id, date) WHERE clock_out_time IS NULL
// backs the one-open-session rule against concurrent clock-ins.
func (r *sessionRepositoryImpl) Create(ctx context.Context, s timetracking.Session) (timetracking.Session, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO time_tracking (
			id, user_id, tenant_id, date, clock_in_time,
			total_work_hours, total_break_hours, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			0, 0, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.UserID, s.TenantID, s.Date, s.ClockInTime,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return timetracking.Session{}, timetracking.ErrAlreadyClockedIn
		}
		return timetracking.Session{}, err
	}

	return s, nil
}

// GetOpenByUserAndDate implements timetracking.SessionRepository.
func (r *sessionRepositoryImpl) GetOpenByUserAndDate(ctx context.Context, userID, tenantID, date string) (timetracking.Session, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, user_id, tenant_id, date::text, clock_in_time, clock_out_time,
			   break_in_time, break_out_time, total_work_hours, total_break_hours,
			   created_at, updated_at
		FROM time_tracking
		WHERE user_id = $1 AND tenant_id = $2 AND date = $3
		AND clock_out_time IS NULL
		ORDER BY clock_in_time DESC
		LIMIT 1
	`

	var s timetracking.Session
	err := q.QueryRow(ctx, query, userID, tenantID, date).Scan(
		&s.ID, &s.UserID, &s.TenantID, &s.Date, &s.ClockInTime, &s.ClockOutTime,
		&s.BreakInTime, &s.BreakOutTime, &s.TotalWorkHours, &s.TotalBreakHours,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timetracking.Session{}, timetracking.ErrNoOpenSession
		}
		return timetracking.Session{}, err
	}

	return s, nil
}

// ListByUserAndDate implements timetracking.SessionRepository.
func (r *sessionRepositoryImpl) ListByUserAndDate(ctx context.Context, userID, tenantID, date string) ([]timetracking.Session, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, user_id, tenant_id, date::text, clock_in_time, clock_out_time,
			   break_in_time, break_out_time, total_work_hours, total_break_hours,
			   created_at, updated_at
		FROM time_tracking
		WHERE user_id = $1 AND tenant_id = $2 AND date = $3
		ORDER BY clock_in_time ASC
	`

	rows, err := q.Query(ctx, query, userID, tenantID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]timetracking.Session, 0)
	for rows.Next() {
		var s timetracking.Session
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.TenantID, &s.Date, &s.ClockInTime, &s.ClockOutTime,
			&s.BreakInTime, &s.BreakOutTime, &s.TotalWorkHours, &s.TotalBreakHours,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}

// SetBreakIn implements timetracking.SessionRepository.
// A fresh break clears the previous break-out marker; only the cumulative
// total_break_hours keeps the earlier break's duration. The on-break check
// lives inside the UPDATE so two concurrent break-ins cannot both pass a
// stale read of the same session row.
func (r *sessionRepositoryImpl) SetBreakIn(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE time_tracking
		SET break_in_time = $1, break_out_time = NULL, updated_at = NOW()
		WHERE id = $2
		AND (break_in_time IS NULL OR break_out_time IS NOT NULL)
	`

	result, err := q.Exec(ctx, query, at, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return timetracking.ErrAlreadyOnBreak
	}

	return nil
}

// SetBreakOut implements timetracking.SessionRepository.
func (r *sessionRepositoryImpl) SetBreakOut(ctx context.Context, id string, at time.Time, totalBreakHours float64) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE time_tracking
		SET break_out_time = $1, total_break_hours = $2, updated_at = NOW()
		WHERE id = $3
	`
	_, err := q.Exec(ctx, query, at, totalBreakHours, id)
	return err
}

// Close implements timetracking.SessionRepository.
func (r *sessionRepositoryImpl) Close(ctx context.Context, id string, at time.Time, workHours, breakHours float64) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE time_tracking
		SET clock_out_time = $1, total_work_hours = $2, total_break_hours = $3, updated_at = NOW()
		WHERE id = $4
	`
	_, err := q.Exec(ctx, query, at, workHours, breakHours, id)
	return err
}

// ListDailySummary implements timetracking.SessionRepository.
// One row per calendar day: earliest clock-in, latest clock-out (null while
// any session that day is still open), summed hours.
func (r *sessionRepositoryImpl) ListDailySummary(ctx context.Context, userID, tenantID, startDate, endDate string, limit int) ([]timetracking.AttendanceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date::text,
			   MIN(clock_in_time) AS clock_in_time,
			   CASE
				   WHEN COUNT(*) FILTER (WHERE clock_out_time IS NULL) > 0
				   THEN NULL
				   ELSE MAX(clock_out_time)
			   END AS clock_out_time,
			   COALESCE(SUM(total_work_hours), 0) AS total_work_hours,
			   COALESCE(SUM(total_break_hours), 0) AS total_break_hours
		FROM time_tracking
		WHERE user_id = $1 AND tenant_id = $2`
	args := []interface{}{userID, tenantID}

	if startDate != "" {
		args = append(args, startDate)
		query += " AND date >= $" + itoa(len(args))
	}
	if endDate != "" {
		args = append(args, endDate)
		query += " AND date <= $" + itoa(len(args))
	}

	args = append(args, limit)
	query += " GROUP BY date ORDER BY date DESC LIMIT $" + itoa(len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]timetracking.AttendanceDay, 0)
	for rows.Next() {
		var day timetracking.AttendanceDay
		var clockIn *time.Time
		if err := rows.Scan(
			&day.Date, &clockIn, &day.ClockOutTime,
			&day.TotalWorkHours, &day.TotalBreakHours,
		); err != nil {
			return nil, err
		}
		day.ClockInTime = clockIn
		days = append(days, day)
	}

	return days, nil
}
