package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusProcessed Status = "Processed"
	StatusPaid      Status = "Paid"
	StatusCancelled Status = "Cancelled"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusDraft, StatusProcessed, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// AttendanceSummary aggregates an employee's attendance records over one pay
// period. RegularHours and OvertimeHours are the raw sums; the per-month pay
// caps are applied inside the engine, not here.
type AttendanceSummary struct {
	TotalHoursWorked float64
	RegularHours     float64
	OvertimeHours    float64
	DaysPresent      int
	DaysLate         int
	DaysAbsent       int
}

// SalaryBreakdown holds the pay side of a computed payroll.
type SalaryBreakdown struct {
	BasicSalary  decimal.Decimal
	HourlyRate   decimal.Decimal
	OvertimeRate decimal.Decimal
	RegularPay   decimal.Decimal
	OvertimePay  decimal.Decimal
	GrossPay     decimal.Decimal
}

// Deductions holds the statutory deduction side of a computed payroll.
type Deductions struct {
	PAYE            decimal.Decimal
	NHIF            decimal.Decimal
	NSSF            decimal.Decimal
	TotalDeductions decimal.Decimal
}

// Record - one employee's payroll for one month. The derived fields are
// always recomputed from BasicSalary and Summary before a persist; the
// record is never a cache the caller fills in directly. The payroll_records
// table enforces uniqueness of (employee_id, period_month, period_year).
type Record struct {
	ID          string
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time
	PeriodMonth int // 1-12
	PeriodYear  int

	Summary    AttendanceSummary
	Breakdown  SalaryBreakdown
	Deductions Deductions
	NetPay     decimal.Decimal

	Status           Status
	ProcessedBy      *string
	ProcessedDate    *time.Time
	PaidDate         *time.Time
	PayslipGenerated bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeEmail *string
}
