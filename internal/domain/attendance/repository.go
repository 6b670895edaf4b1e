package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record. The backing table's unique
	// index on (employee_id, date) makes Create fail with
	// ErrAttendanceExists when a record for that day already exists.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for a specific employee on a
	// specific calendar date. Returns nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// List retrieves attendance records with filters and pagination,
	// joined with employee name and email
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListByEmployee retrieves attendance records for one employee
	ListByEmployee(ctx context.Context, employeeID string, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListByEmployeeAndPeriod retrieves all attendance records for one
	// employee between two dates inclusive. Used by payroll generation.
	ListByEmployeeAndPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
}
