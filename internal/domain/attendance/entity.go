package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPresent, StatusLate, StatusAbsent:
		return true
	}
	return false
}

// Attendance is one employee's record for one calendar day. Date carries no
// time-of-day component, so (EmployeeID, Date) identifies the record; the
// attendances table enforces that pair with a unique index.
type Attendance struct {
	ID                string
	EmployeeID        string
	Date              time.Time
	Status            Status
	ClockIn           *time.Time
	ClockOut          *time.Time
	TotalHours        float64
	RegularHours      float64
	OvertimeHours     float64
	IsClockOutPending bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeEmail *string
}
