package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wagepoint/wagepoint-api/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Draft, Processed, Paid, Cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Month      *int    `json:"month,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Status     *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *PayrollFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Status != nil && *f.Status != "" && !IsValidStatus(*f.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Draft, Processed, Paid, Cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceSummaryResponse struct {
	TotalHoursWorked float64 `json:"total_hours_worked"`
	RegularHours     float64 `json:"regular_hours"`
	OvertimeHours    float64 `json:"overtime_hours"`
	DaysPresent      int     `json:"days_present"`
	DaysLate         int     `json:"days_late"`
	DaysAbsent       int     `json:"days_absent"`
}

type SalaryBreakdownResponse struct {
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	OvertimeRate decimal.Decimal `json:"overtime_rate"`
	RegularPay   decimal.Decimal `json:"regular_pay"`
	OvertimePay  decimal.Decimal `json:"overtime_pay"`
	GrossPay     decimal.Decimal `json:"gross_pay"`
}

type DeductionsResponse struct {
	PAYE            decimal.Decimal `json:"paye"`
	NHIF            decimal.Decimal `json:"nhif"`
	NSSF            decimal.Decimal `json:"nssf"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
}

type PayrollRecordResponse struct {
	ID               string                    `json:"id"`
	EmployeeID       string                    `json:"employee_id"`
	EmployeeName     *string                   `json:"employee_name,omitempty"`
	EmployeeEmail    *string                   `json:"employee_email,omitempty"`
	PeriodStart      string                    `json:"period_start"`
	PeriodEnd        string                    `json:"period_end"`
	PeriodMonth      int                       `json:"period_month"`
	PeriodYear       int                       `json:"period_year"`
	Summary          AttendanceSummaryResponse `json:"attendance_summary"`
	Breakdown        SalaryBreakdownResponse   `json:"salary_breakdown"`
	Deductions       DeductionsResponse        `json:"deductions"`
	NetPay           decimal.Decimal           `json:"net_pay"`
	Status           string                    `json:"status"`
	ProcessedBy      *string                   `json:"processed_by,omitempty"`
	ProcessedDate    *string                   `json:"processed_date,omitempty"`
	PaidDate         *string                   `json:"paid_date,omitempty"`
	PayslipGenerated bool                      `json:"payslip_generated"`
	CreatedAt        string                    `json:"created_at"`
	UpdatedAt        string                    `json:"updated_at"`
}

func ToPayrollRecordResponse(r Record) PayrollRecordResponse {
	resp := PayrollRecordResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		EmployeeEmail: r.EmployeeEmail,
		PeriodStart:   r.PeriodStart.Format("2006-01-02"),
		PeriodEnd:     r.PeriodEnd.Format("2006-01-02"),
		PeriodMonth:   r.PeriodMonth,
		PeriodYear:    r.PeriodYear,
		Summary: AttendanceSummaryResponse{
			TotalHoursWorked: r.Summary.TotalHoursWorked,
			RegularHours:     r.Summary.RegularHours,
			OvertimeHours:    r.Summary.OvertimeHours,
			DaysPresent:      r.Summary.DaysPresent,
			DaysLate:         r.Summary.DaysLate,
			DaysAbsent:       r.Summary.DaysAbsent,
		},
		Breakdown: SalaryBreakdownResponse{
			BasicSalary:  r.Breakdown.BasicSalary,
			HourlyRate:   r.Breakdown.HourlyRate,
			OvertimeRate: r.Breakdown.OvertimeRate,
			RegularPay:   r.Breakdown.RegularPay,
			OvertimePay:  r.Breakdown.OvertimePay,
			GrossPay:     r.Breakdown.GrossPay,
		},
		Deductions: DeductionsResponse{
			PAYE:            r.Deductions.PAYE,
			NHIF:            r.Deductions.NHIF,
			NSSF:            r.Deductions.NSSF,
			TotalDeductions: r.Deductions.TotalDeductions,
		},
		NetPay:           r.NetPay,
		Status:           string(r.Status),
		ProcessedBy:      r.ProcessedBy,
		PayslipGenerated: r.PayslipGenerated,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        r.UpdatedAt.Format(time.RFC3339),
	}

	if r.ProcessedDate != nil {
		s := r.ProcessedDate.Format(time.RFC3339)
		resp.ProcessedDate = &s
	}
	if r.PaidDate != nil {
		s := r.PaidDate.Format(time.RFC3339)
		resp.PaidDate = &s
	}

	return resp
}

type ListPayrollResponse struct {
	Records    []PayrollRecordResponse `json:"records"`
	Pagination PaginationResponse      `json:"pagination"`
}

type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// GenerateResultResponse is the tally a batch generation returns. Errors
// carries one message per employee that failed; the batch itself still
// succeeds.
type GenerateResultResponse struct {
	Generated      int      `json:"generated"`
	TotalEmployees int      `json:"total_employees"`
	Errors         []string `json:"errors"`
}

// ProjectionResponse estimates the current month's pay from the attendance
// recorded so far, plus a second figure assuming the full regular-hours
// baseline is eventually worked.
type ProjectionResponse struct {
	Month         int                       `json:"month"`
	Year          int                       `json:"year"`
	Summary       AttendanceSummaryResponse `json:"attendance_summary"`
	Breakdown     SalaryBreakdownResponse   `json:"salary_breakdown"`
	Deductions    DeductionsResponse        `json:"deductions"`
	NetPay        decimal.Decimal           `json:"net_pay"`
	ProjectedFull ProjectedFullMonth        `json:"projected_full_month"`
}

type ProjectedFullMonth struct {
	GrossPay        decimal.Decimal `json:"gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
}
