package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn records the start of today's session for the authenticated
	// employee. Fails when a clock-in already exists for today.
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes today's session and derives the hour totals
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// MarkAttendance records a full day in one call (status plus optional
	// clock times). Kept for clients that predate the clock-in/out flow.
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// GetToday retrieves today's record for the authenticated employee
	GetToday(ctx context.Context) (*AttendanceResponse, error)

	// GetMyAttendance retrieves attendance records for the authenticated employee
	GetMyAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves attendance records across employees (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
