package timetracking

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/peoplehub/hrms-backend-go/internal/domain/timetracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testTenantID = "01900000-0000-7000-8000-00000000000a"
	testUserID   = "01900000-0000-7000-8000-00000000000b"
)

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeSessionRepo struct {
	sessions []*timetracking.Session
	summary  []timetracking.AttendanceDay
	nextID   int

	lastSummaryLimit int

	// Run just before the write applies, to interleave a competing
	// writer between the service's read and its write.
	beforeCreate  func()
	beforeBreakIn func()
}

func (r *fakeSessionRepo) Create(_ context.Context, s timetracking.Session) (timetracking.Session, error) {
	if r.beforeCreate != nil {
		r.beforeCreate()
	}
	// The partial unique index rejects a second open session.
	if r.open(s.UserID, s.TenantID, s.Date) != nil {
		return timetracking.Session{}, timetracking.ErrAlreadyClockedIn
	}
	r.nextID++
	s.ID = "session-" + strconv.Itoa(r.nextID)
	copied := s
	r.sessions = append(r.sessions, &copied)
	return s, nil
}

func (r *fakeSessionRepo) open(userID, tenantID, date string) *timetracking.Session {
	var latest *timetracking.Session
	for _, s := range r.sessions {
		if s.UserID != userID || s.TenantID != tenantID || s.Date != date || !s.Open() {
			continue
		}
		if latest == nil || s.ClockInTime.After(latest.ClockInTime) {
			latest = s
		}
	}
	return latest
}

func (r *fakeSessionRepo) GetOpenByUserAndDate(_ context.Context, userID, tenantID, date string) (timetracking.Session, error) {
	if s := r.open(userID, tenantID, date); s != nil {
		return *s, nil
	}
	return timetracking.Session{}, timetracking.ErrNoOpenSession
}

func (r *fakeSessionRepo) ListByUserAndDate(_ context.Context, userID, tenantID, date string) ([]timetracking.Session, error) {
	out := make([]timetracking.Session, 0)
	for _, s := range r.sessions {
		if s.UserID == userID && s.TenantID == tenantID && s.Date == date {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) byID(id string) *timetracking.Session {
	for _, s := range r.sessions {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (r *fakeSessionRepo) SetBreakIn(_ context.Context, id string, at time.Time) error {
	if r.beforeBreakIn != nil {
		r.beforeBreakIn()
	}
	s := r.byID(id)
	// The guarded UPDATE refuses a row already on a break.
	if s.OnBreak() {
		return timetracking.ErrAlreadyOnBreak
	}
	s.BreakInTime = &at
	s.BreakOutTime = nil
	return nil
}

func (r *fakeSessionRepo) SetBreakOut(_ context.Context, id string, at time.Time, totalBreakHours float64) error {
	s := r.byID(id)
	s.BreakOutTime = &at
	s.TotalBreakHours = totalBreakHours
	return nil
}

func (r *fakeSessionRepo) Close(_ context.Context, id string, at time.Time, workHours, breakHours float64) error {
	s := r.byID(id)
	s.ClockOutTime = &at
	s.TotalWorkHours = workHours
	s.TotalBreakHours = breakHours
	return nil
}

func (r *fakeSessionRepo) ListDailySummary(_ context.Context, userID, tenantID, startDate, endDate string, limit int) ([]timetracking.AttendanceDay, error) {
	r.lastSummaryLimit = limit
	return r.summary, nil
}

type trackingFixture struct {
	service  timetracking.TimeTrackingService
	sessions *fakeSessionRepo
	clk      *fakeClock
}

func newTrackingFixture() *trackingFixture {
	sessions := &fakeSessionRepo{}
	clk := &fakeClock{now: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)}
	return &trackingFixture{
		service:  NewTimeTrackingService(&fakeTxManager{}, sessions, clk),
		sessions: sessions,
		clk:      clk,
	}
}

func (f *trackingFixture) at(hour, min int) {
	f.clk.now = time.Date(2026, 1, 5, hour, min, 0, 0, time.UTC)
}

func TestClockInCreatesOpenSession(t *testing.T) {
	f := newTrackingFixture()

	resp, err := f.service.ClockIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)
	assert.Equal(t, f.clk.now, resp.Timestamp)

	require.Len(t, f.sessions.sessions, 1)
	s := f.sessions.sessions[0]
	assert.Equal(t, "2026-01-05", s.Date)
	assert.True(t, s.Open())
	assert.Equal(t, f.clk.now, s.ClockInTime)
}

func TestClockInTwiceFails(t *testing.T) {
	f := newTrackingFixture()

	_, err := f.service.ClockIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	f.at(10, 0)
	_, err = f.service.ClockIn(context.Background(), testUserID, testTenantID)
	assert.ErrorIs(t, err, timetracking.ErrAlreadyClockedIn)
	assert.Len(t, f.sessions.sessions, 1)
}

func TestClockInAgainAfterClockOutStartsNewSession(t *testing.T) {
	f := newTrackingFixture()

	_, err := f.service.ClockIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	f.at(12, 0)
	_, err = f.service.ClockOut(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	f.at(13, 0)
	_, err = f.service.ClockIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)
	assert.Len(t, f.sessions.sessions, 2)
}

func TestClockOutWithoutSessionFails(t *testing.T) {
	f := newTrackingFixture()

	_, err := f.service.ClockOut(context.Background(), testUserID, testTenantID)
	assert.ErrorIs(t, err, timetracking.ErrNoOpenSession)
}

func TestClockOutDeductsBreaks(t *testing.T) {
	f := newTrackingFixture()

	_, err := f.service.ClockIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	f.at(12, 0)
	_, err = f.service.BreakIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	f.at(12, 30)
	breakResp, err := f.service.BreakOut(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)
	assert.Equal(t, 0.5, breakResp.BreakHours)

	f.at(17, 30)
	resp, err := f.service.ClockOut(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)
	// 8.5h elapsed minus 0.5h break.
	assert.Equal(t, 8.0, resp.TotalWorkHours)

	s := f.sessions.sessions[0]
	assert.False(t, s.Open())
	assert.Equal(t, 8.0, s.TotalWorkHours)
	assert.Equal(t, 0.5, s.TotalBreakHours)
}

func TestClockOutFoldsOpenBreakIntoTotals(t *testing.T) {
	f := newTrackingFixture()

	_, err := f.service.ClockIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	f.at(12, 0)
	_, err = f.service.BreakIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	// Clock out while still on break; the open break counts up to now.
	f.at(13, 0)
	resp, err := f.service.ClockOut(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	assert.Equal(t, 3.0, resp.TotalWorkHours)
	assert.Equal(t, 1.0, f.sessions.sessions[0].TotalBreakHours)
}

func TestClockOutClampsNegativeWorkToZero(t *testing.T) {
	f := newTrackingFixture()

	// Session with more recorded break than elapsed time.
	open := timetracking.Session{
		UserID:          testUserID,
		TenantID:        testTenantID,
		Date:            "2026-01-05",
		ClockInTime:     time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
		TotalBreakHours: 5,
	}
	_, err := f.sessions.Create(context.Background(), open)
	require.NoError(t, err)

	f.at(10, 0)
	resp, err := f.service.ClockOut(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.TotalWorkHours)
}

func TestBreakOutAccumulatesAcrossBreaks(t *testing.T) {
	f := newTrackingFixture()

	_, err := f.service.ClockIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	f.at(11, 0)
	_, err = f.service.BreakIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)
	f.at(11, 30)
	first, err := f.service.BreakOut(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)
	assert.Equal(t, 0.5, first.BreakHours)

	f.at(15, 0)
	_, err = f.service.BreakIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)
	f.at(15, 15)
	second, err := f.service.BreakOut(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)
	// Response reports this break only; the session total accumulates.
	assert.Equal(t, 0.25, second.BreakHours)
	assert.Equal(t, 0.75, f.sessions.sessions[0].TotalBreakHours)
}

func TestClockInInterleavedInsertLoses(t *testing.T) {
	f := newTrackingFixture()

	// A competing clock-in lands between the open-session check and the
	// insert; the index catches what the check could not see.
	f.sessions.beforeCreate = func() {
		f.sessions.beforeCreate = nil
		winner := timetracking.Session{
			ID:          "session-winner",
			UserID:      testUserID,
			TenantID:    testTenantID,
			Date:        "2026-01-05",
			ClockInTime: f.clk.now,
		}
		f.sessions.sessions = append(f.sessions.sessions, &winner)
	}

	_, err := f.service.ClockIn(context.Background(), testUserID, testTenantID)
	assert.ErrorIs(t, err, timetracking.ErrAlreadyClockedIn)
	assert.Len(t, f.sessions.sessions, 1)
}

func TestBreakInInterleavedBreakKeepsFirstTimestamp(t *testing.T) {
	f := newTrackingFixture()

	_, err := f.service.ClockIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	// A competing break-in lands between the session read and the update;
	// the guarded UPDATE refuses the second writer.
	first := time.Date(2026, 1, 5, 11, 59, 0, 0, time.UTC)
	f.sessions.beforeBreakIn = func() {
		f.sessions.beforeBreakIn = nil
		s := f.sessions.sessions[0]
		s.BreakInTime = &first
		s.BreakOutTime = nil
	}

	f.at(12, 0)
	_, err = f.service.BreakIn(context.Background(), testUserID, testTenantID)
	assert.ErrorIs(t, err, timetracking.ErrAlreadyOnBreak)

	// The first break's start survives untouched.
	require.NotNil(t, f.sessions.sessions[0].BreakInTime)
	assert.Equal(t, first, *f.sessions.sessions[0].BreakInTime)
}

func TestBreakInWhileOnBreakFails(t *testing.T) {
	f := newTrackingFixture()

	_, err := f.service.ClockIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	f.at(12, 0)
	_, err = f.service.BreakIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	_, err = f.service.BreakIn(context.Background(), testUserID, testTenantID)
	assert.ErrorIs(t, err, timetracking.ErrAlreadyOnBreak)
}

func TestBreakOutWithoutBreakFails(t *testing.T) {
	f := newTrackingFixture()

	_, err := f.service.ClockIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	_, err = f.service.BreakOut(context.Background(), testUserID, testTenantID)
	assert.ErrorIs(t, err, timetracking.ErrNotOnBreak)
}

func TestBreakOutWithoutSessionFails(t *testing.T) {
	f := newTrackingFixture()

	_, err := f.service.BreakOut(context.Background(), testUserID, testTenantID)
	assert.ErrorIs(t, err, timetracking.ErrNotOnBreak)
}

func TestBreakInWithoutSessionFails(t *testing.T) {
	f := newTrackingFixture()

	_, err := f.service.BreakIn(context.Background(), testUserID, testTenantID)
	assert.ErrorIs(t, err, timetracking.ErrNoOpenSession)
}

func TestTodayStatusEmpty(t *testing.T) {
	f := newTrackingFixture()

	status, err := f.service.TodayStatus(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)
	assert.False(t, status.ClockedIn)
	assert.False(t, status.ClockedOut)
	assert.Equal(t, 0, status.SessionsCount)
}

func TestTodayStatusProjectsOpenSessionWithoutPersisting(t *testing.T) {
	f := newTrackingFixture()

	// Closed morning session: 9:00-12:00 with a half-hour break.
	_, err := f.service.ClockIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)
	f.at(10, 0)
	_, err = f.service.BreakIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)
	f.at(10, 30)
	_, err = f.service.BreakOut(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)
	f.at(12, 0)
	_, err = f.service.ClockOut(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	// Open afternoon session from 14:00, observed at 16:00.
	f.at(14, 0)
	_, err = f.service.ClockIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)
	f.at(16, 0)

	status, err := f.service.TodayStatus(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	assert.True(t, status.ClockedIn)
	assert.False(t, status.ClockedOut)
	assert.False(t, status.OnBreak)
	assert.Equal(t, 2, status.SessionsCount)
	// 2.5h persisted + 2h live projection.
	assert.Equal(t, 4.5, status.TotalWorkHours)
	assert.Equal(t, 0.5, status.TotalBreakHours)

	// The projection never hits storage.
	openSession := f.sessions.open(testUserID, testTenantID, "2026-01-05")
	require.NotNil(t, openSession)
	assert.Equal(t, 0.0, openSession.TotalWorkHours)
}

func TestTodayStatusAfterFinalClockOut(t *testing.T) {
	f := newTrackingFixture()

	_, err := f.service.ClockIn(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)
	f.at(17, 0)
	_, err = f.service.ClockOut(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	status, err := f.service.TodayStatus(context.Background(), testUserID, testTenantID)
	require.NoError(t, err)

	assert.False(t, status.ClockedIn)
	assert.True(t, status.ClockedOut)
	require.NotNil(t, status.ClockOutTime)
	assert.Equal(t, f.clk.now, *status.ClockOutTime)
	assert.Equal(t, 8.0, status.TotalWorkHours)
}

func TestAttendancePassesRangeAndLimit(t *testing.T) {
	f := newTrackingFixture()
	f.sessions.summary = []timetracking.AttendanceDay{
		{Date: "2026-01-05", TotalWorkHours: 8},
	}

	days, err := f.service.Attendance(context.Background(), testUserID, testTenantID, "2026-01-01", "2026-01-31")
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2026-01-05", days[0].Date)
	assert.Equal(t, 100, f.sessions.lastSummaryLimit)
}
