package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagepoint/wagepoint-api/internal/domain/attendance"
	"github.com/wagepoint/wagepoint-api/internal/domain/notification"
)

const testSecret = "test-secret-key-for-jwt"

// fakeAttendanceRepo is an in-memory attendance.AttendanceRepository keyed
// by employee and date, mirroring the unique index on the real table.
type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "/" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	key := dayKey(rec.EmployeeID, rec.Date)
	if _, ok := f.records[key]; ok {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
	}
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	f.records[key] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	rec, ok := f.records[dayKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, rec attendance.Attendance) error {
	key := dayKey(rec.EmployeeID, rec.Date)
	if _, ok := f.records[key]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	rec.UpdatedAt = time.Now()
	f.records[key] = rec
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// noopNotificationService satisfies notification.Service without workers.
type noopNotificationService struct{}

func (noopNotificationService) QueueNotification(ctx context.Context, req notification.CreateNotificationRequest) error {
	return nil
}
func (noopNotificationService) GetNotifications(ctx context.Context, recipientID string, page, pageSize int, unreadOnly bool) (*notification.NotificationListResponse, error) {
	return &notification.NotificationListResponse{}, nil
}
func (noopNotificationService) GetUnreadCount(ctx context.Context, recipientID string) (int, error) {
	return 0, nil
}
func (noopNotificationService) MarkAsRead(ctx context.Context, recipientID string, req notification.MarkAsReadRequest) error {
	return nil
}
func (noopNotificationService) Stop() {}

func authContext(t *testing.T, employeeID, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte(testSecret), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"role":        role,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func strPtr(s string) *string { return &s }

func TestAttendanceService_ClockIn_Success(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, noopNotificationService{})
	ctx := authContext(t, "emp-1", "employee")

	resp, err := svc.ClockIn(ctx, attendance.ClockInRequest{Status: "Present"})

	require.NoError(t, err)
	assert.Equal(t, "Present", resp.Status)
	assert.NotNil(t, resp.ClockIn)
	assert.Nil(t, resp.ClockOut)
	assert.True(t, resp.IsClockOutPending)
	assert.Zero(t, resp.TotalHours)
}

func TestAttendanceService_ClockIn_TwiceSameDay(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, noopNotificationService{})
	ctx := authContext(t, "emp-1", "employee")

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{Status: "Present"})
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{Status: "Present"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestAttendanceService_ClockOut_DerivesHours(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, noopNotificationService{})
	ctx := authContext(t, "emp-1", "employee")

	day := time.Now().UTC().Format("2006-01-02")
	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		Status:      "Present",
		ClockInTime: strPtr(day + "T08:00:00Z"),
	})
	require.NoError(t, err)

	resp, err := svc.ClockOut(ctx, attendance.ClockOutRequest{
		ClockOutTime: strPtr(day + "T18:30:00Z"),
	})

	require.NoError(t, err)
	assert.InDelta(t, 10.5, resp.TotalHours, 0.001)
	assert.InDelta(t, 8.0, resp.RegularHours, 0.001)
	assert.InDelta(t, 2.5, resp.OvertimeHours, 0.001)
	assert.False(t, resp.IsClockOutPending)
}

func TestAttendanceService_ClockOut_WithoutClockIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, noopNotificationService{})
	ctx := authContext(t, "emp-1", "employee")

	_, err := svc.ClockOut(ctx, attendance.ClockOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestAttendanceService_ClockOut_Twice(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, noopNotificationService{})
	ctx := authContext(t, "emp-1", "employee")

	day := time.Now().UTC().Format("2006-01-02")
	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		Status:      "Present",
		ClockInTime: strPtr(day + "T08:00:00Z"),
	})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{ClockOutTime: strPtr(day + "T17:00:00Z")})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{ClockOutTime: strPtr(day + "T18:00:00Z")})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestAttendanceService_ClockOut_AbsentDay(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, noopNotificationService{})
	ctx := authContext(t, "emp-1", "employee")

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{Status: "Absent"})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrAbsentCannotClockOut)
}

func TestAttendanceService_ClockOut_NotAfterClockIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, noopNotificationService{})
	ctx := authContext(t, "emp-1", "employee")

	day := time.Now().UTC().Format("2006-01-02")
	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		Status:      "Present",
		ClockInTime: strPtr(day + "T09:00:00Z"),
	})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{ClockOutTime: strPtr(day + "T08:00:00Z")})
	assert.ErrorIs(t, err, attendance.ErrClockOutNotAfterClockIn)
}

func TestAttendanceService_ClockIn_AbsentHasNoClockTime(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, noopNotificationService{})
	ctx := authContext(t, "emp-1", "employee")

	resp, err := svc.ClockIn(ctx, attendance.ClockInRequest{Status: "Absent"})

	require.NoError(t, err)
	assert.Nil(t, resp.ClockIn)
	assert.False(t, resp.IsClockOutPending)
	assert.Zero(t, resp.TotalHours)
	assert.Zero(t, resp.RegularHours)
	assert.Zero(t, resp.OvertimeHours)
}

func TestAttendanceService_MarkAttendance_ReplacesExisting(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, noopNotificationService{})
	ctx := authContext(t, "emp-1", "employee")

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{Status: "Present"})
	require.NoError(t, err)

	resp, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{Status: "Absent"})

	require.NoError(t, err)
	assert.Equal(t, "Absent", resp.Status)
	assert.Nil(t, resp.ClockIn)
	assert.Zero(t, resp.TotalHours)
}

func TestAttendanceService_GetToday_NoRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, noopNotificationService{})
	ctx := authContext(t, "emp-1", "employee")

	resp, err := svc.GetToday(ctx)

	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestAttendanceService_ClockIn_InvalidStatus(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, noopNotificationService{})
	ctx := authContext(t, "emp-1", "employee")

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{Status: "OnVacation"})
	assert.Error(t, err)
}
