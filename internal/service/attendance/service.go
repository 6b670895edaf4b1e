package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/wagepoint/wagepoint-api/internal/domain/attendance"
	"github.com/wagepoint/wagepoint-api/internal/domain/notification"
	"github.com/wagepoint/wagepoint-api/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	notificationService notification.Service
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	notificationService notification.Service,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		notificationService:  notificationService,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// dayOf strips the time-of-day component so records key on the calendar date.
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	clockIn := time.Now().UTC()
	if req.ClockInTime != nil && *req.ClockInTime != "" {
		clockIn, _ = validator.IsValidDateTime(*req.ClockInTime)
		clockIn = clockIn.UTC()
	}

	today := dayOf(clockIn)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	rec := attendance.Attendance{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: employeeID,
		Date:       today,
		Status:     attendance.Status(req.Status),
	}
	if rec.Status != attendance.StatusAbsent {
		rec.ClockIn = &clockIn
	}

	attendance.RecomputeHours(&rec)

	// The check above is advisory; the unique index on (employee_id, date)
	// is what actually prevents a concurrent double clock-in, surfaced by
	// the repository as ErrAlreadyClockedIn.
	created, err := a.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	a.notifyClockEvent(ctx, created, "Clock-in recorded",
		fmt.Sprintf("You clocked in at %s with status %s.", clockIn.Format("15:04"), created.Status))

	return attendance.ToAttendanceResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	clockOut := time.Now().UTC()
	if req.ClockOutTime != nil && *req.ClockOutTime != "" {
		clockOut, _ = validator.IsValidDateTime(*req.ClockOutTime)
		clockOut = clockOut.UTC()
	}

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, dayOf(clockOut))
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if rec == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}

	if rec.Status == attendance.StatusAbsent {
		return attendance.AttendanceResponse{}, attendance.ErrAbsentCannotClockOut
	}
	if rec.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}
	if rec.ClockIn == nil || !clockOut.After(*rec.ClockIn) {
		return attendance.AttendanceResponse{}, attendance.ErrClockOutNotAfterClockIn
	}

	rec.ClockOut = &clockOut
	attendance.RecomputeHours(rec)

	if err := a.AttendanceRepository.Update(ctx, *rec); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	a.notifyClockEvent(ctx, *rec, "Clock-out recorded",
		fmt.Sprintf("You clocked out at %s. Total hours today: %.2f (%.2f overtime).",
			clockOut.Format("15:04"), rec.TotalHours, rec.OvertimeHours))

	return attendance.ToAttendanceResponse(*rec), nil
}

// MarkAttendance implements attendance.AttendanceService. Unlike ClockIn it
// replaces an existing record for today instead of failing on it.
func (a *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	clockIn := time.Now().UTC()
	if req.ClockInTime != nil && *req.ClockInTime != "" {
		clockIn, _ = validator.IsValidDateTime(*req.ClockInTime)
		clockIn = clockIn.UTC()
	}

	today := dayOf(clockIn)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}

	if existing != nil {
		existing.Status = attendance.Status(req.Status)
		if existing.Status == attendance.StatusAbsent {
			existing.ClockIn = nil
			existing.ClockOut = nil
		} else if existing.ClockIn == nil {
			existing.ClockIn = &clockIn
		}
		attendance.RecomputeHours(existing)

		if err := a.AttendanceRepository.Update(ctx, *existing); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
		}
		return attendance.ToAttendanceResponse(*existing), nil
	}

	rec := attendance.Attendance{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: employeeID,
		Date:       today,
		Status:     attendance.Status(req.Status),
	}
	if rec.Status != attendance.StatusAbsent {
		rec.ClockIn = &clockIn
	}
	attendance.RecomputeHours(&rec)

	created, err := a.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	a.notifyClockEvent(ctx, created, "Attendance marked",
		fmt.Sprintf("Your attendance for %s was recorded as %s.", today.Format("2006-01-02"), created.Status))

	return attendance.ToAttendanceResponse(created), nil
}

// GetToday implements attendance.AttendanceService. Returns nil when no
// record exists yet for today.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context) (*attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, dayOf(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if rec == nil {
		return nil, nil
	}

	resp := attendance.ToAttendanceResponse(*rec)
	return &resp, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return toListResponse(records, total, filter), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return toListResponse(records, total, filter), nil
}

func toListResponse(records []attendance.Attendance, total int64, filter attendance.AttendanceFilter) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, len(records))
	for i, rec := range records {
		responses[i] = attendance.ToAttendanceResponse(rec)
	}

	return attendance.ListAttendanceResponse{
		Attendances: responses,
		Pagination: attendance.PaginationResponse{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		},
	}
}

// notifyClockEvent is fire-and-forget: delivery failure never affects the
// attendance mutation that triggered it.
func (a *AttendanceServiceImpl) notifyClockEvent(ctx context.Context, rec attendance.Attendance, title, message string) {
	_ = a.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: rec.EmployeeID,
		Category:    notification.CategoryAttendance,
		Title:       title,
		Message:     message,
	})
}
