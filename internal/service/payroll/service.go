package payroll

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/wagepoint/wagepoint-api/internal/domain/attendance"
	"github.com/wagepoint/wagepoint-api/internal/domain/employee"
	"github.com/wagepoint/wagepoint-api/internal/domain/notification"
	"github.com/wagepoint/wagepoint-api/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
	notificationService notification.Service
}

func NewPayrollService(
	payrollRepository payroll.PayrollRepository,
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	notificationService notification.Service,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:    payrollRepository,
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		notificationService:  notificationService,
	}
}

func claimsFromContext(ctx context.Context) (employeeID string, role string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	role, _ = claims["role"].(string)

	return employeeID, role, nil
}

// periodBounds returns the first and last calendar day of the month.
func periodBounds(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// GenerateForMonth implements payroll.PayrollService. Employees are
// processed sequentially and independently: one failure is recorded in the
// result's error list and generation moves on. Records already created stay.
func (p *PayrollServiceImpl) GenerateForMonth(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GenerateResultResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateResultResponse{}, err
	}

	actorID, _, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.GenerateResultResponse{}, err
	}

	employees, err := p.EmployeeRepository.ListAll(ctx)
	if err != nil {
		return payroll.GenerateResultResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	result := payroll.GenerateResultResponse{
		TotalEmployees: len(employees),
		Errors:         []string{},
	}

	for _, emp := range employees {
		if err := p.generateForEmployee(ctx, emp, req.Month, req.Year, actorID); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s: %v", emp.FullName, err))
			continue
		}
		result.Generated++
	}

	return result, nil
}

func (p *PayrollServiceImpl) generateForEmployee(ctx context.Context, emp employee.Employee, month, year int, actorID string) error {
	exists, err := p.PayrollRepository.ExistsForPeriod(ctx, emp.ID, month, year)
	if err != nil {
		return fmt.Errorf("failed to check existing payroll: %w", err)
	}
	if exists {
		return payroll.ErrPayrollRecordAlreadyExists
	}

	start, end := periodBounds(month, year)

	records, err := p.AttendanceRepository.ListByEmployeeAndPeriod(ctx, emp.ID, start, end)
	if err != nil {
		return fmt.Errorf("failed to aggregate attendance: %w", err)
	}

	summary := payroll.Summarize(toAttendanceDays(records))
	breakdown, deductions, netPay := payroll.Compute(emp.BasicSalary, summary)

	now := time.Now().UTC()
	rec := payroll.Record{
		ID:            uuid.Must(uuid.NewV7()).String(),
		EmployeeID:    emp.ID,
		PeriodStart:   start,
		PeriodEnd:     end,
		PeriodMonth:   month,
		PeriodYear:    year,
		Summary:       summary,
		Breakdown:     breakdown,
		Deductions:    deductions,
		NetPay:        netPay,
		Status:        payroll.StatusProcessed,
		ProcessedBy:   &actorID,
		ProcessedDate: &now,
	}

	// The ExistsForPeriod check above races with concurrent generation;
	// the unique index on (employee_id, period_month, period_year) settles
	// it, surfaced by the repository as ErrPayrollRecordAlreadyExists.
	if _, err := p.PayrollRepository.Create(ctx, rec); err != nil {
		return err
	}

	p.notifyPayrollEvent(ctx, emp.ID, actorID, "Payroll generated",
		fmt.Sprintf("Your payroll for %d/%d has been generated. Net pay: %s.", month, year, netPay))

	return nil
}

func toAttendanceDays(records []attendance.Attendance) []payroll.AttendanceDay {
	days := make([]payroll.AttendanceDay, len(records))
	for i, rec := range records {
		days[i] = payroll.AttendanceDay{
			Status:        string(rec.Status),
			TotalHours:    rec.TotalHours,
			RegularHours:  rec.RegularHours,
			OvertimeHours: rec.OvertimeHours,
		}
	}
	return days
}

// ListPayrolls implements payroll.PayrollService.
func (p *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	records, total, err := p.PayrollRepository.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list payrolls: %w", err)
	}

	return toListResponse(records, total, filter), nil
}

// GetMyPayrolls implements payroll.PayrollService.
func (p *PayrollServiceImpl) GetMyPayrolls(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	records, total, err := p.PayrollRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list payrolls: %w", err)
	}

	return toListResponse(records, total, filter), nil
}

// GetPayroll implements payroll.PayrollService. Employees can only read
// their own records; admins can read any.
func (p *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	employeeID, role, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	rec, err := p.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if role != string(employee.RoleAdmin) && rec.EmployeeID != employeeID {
		return payroll.PayrollRecordResponse{}, payroll.ErrPayrollRecordNotFound
	}

	return payroll.ToPayrollRecordResponse(rec), nil
}

// UpdateStatus implements payroll.PayrollService. Setting Paid stamps the
// paid date exactly once; repeating Paid keeps the original stamp.
func (p *PayrollServiceImpl) UpdateStatus(ctx context.Context, id string, req payroll.UpdateStatusRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	actorID, _, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	rec, err := p.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	newStatus := payroll.Status(req.Status)
	if newStatus == payroll.StatusPaid && rec.PaidDate == nil {
		now := time.Now().UTC()
		rec.PaidDate = &now
	}
	rec.Status = newStatus

	if err := p.PayrollRepository.Update(ctx, rec); err != nil {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to update payroll status: %w", err)
	}

	p.notifyPayrollEvent(ctx, rec.EmployeeID, actorID, "Payroll status updated",
		fmt.Sprintf("Your payroll for %d/%d is now %s.", rec.PeriodMonth, rec.PeriodYear, rec.Status))

	return payroll.ToPayrollRecordResponse(rec), nil
}

// DeletePayroll implements payroll.PayrollService. Paid records are
// immutable financial history and cannot be removed.
func (p *PayrollServiceImpl) DeletePayroll(ctx context.Context, id string) error {
	rec, err := p.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if rec.Status == payroll.StatusPaid {
		return payroll.ErrCannotDeletePaidRecord
	}

	return p.PayrollRepository.Delete(ctx, id)
}

// CurrentMonthProjection implements payroll.PayrollService. It runs the
// same computation as generation over the month-to-date attendance, plus a
// second pass assuming the full regular-hours baseline is reached.
func (p *PayrollServiceImpl) CurrentMonthProjection(ctx context.Context) (payroll.ProjectionResponse, error) {
	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.ProjectionResponse{}, err
	}

	emp, err := p.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.ProjectionResponse{}, payroll.ErrEmployeeNotFound
		}
		return payroll.ProjectionResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	now := time.Now().UTC()
	start, end := periodBounds(int(now.Month()), now.Year())

	records, err := p.AttendanceRepository.ListByEmployeeAndPeriod(ctx, employeeID, start, end)
	if err != nil {
		return payroll.ProjectionResponse{}, fmt.Errorf("failed to aggregate attendance: %w", err)
	}

	summary := payroll.Summarize(toAttendanceDays(records))
	breakdown, deductions, netPay := payroll.Compute(emp.BasicSalary, summary)

	fullMonth := summary
	fullMonth.RegularHours = 160
	fullBreakdown, fullDeductions, fullNet := payroll.Compute(emp.BasicSalary, fullMonth)

	return payroll.ProjectionResponse{
		Month: int(now.Month()),
		Year:  now.Year(),
		Summary: payroll.AttendanceSummaryResponse{
			TotalHoursWorked: summary.TotalHoursWorked,
			RegularHours:     summary.RegularHours,
			OvertimeHours:    summary.OvertimeHours,
			DaysPresent:      summary.DaysPresent,
			DaysLate:         summary.DaysLate,
			DaysAbsent:       summary.DaysAbsent,
		},
		Breakdown: payroll.SalaryBreakdownResponse{
			BasicSalary:  breakdown.BasicSalary,
			HourlyRate:   breakdown.HourlyRate,
			OvertimeRate: breakdown.OvertimeRate,
			RegularPay:   breakdown.RegularPay,
			OvertimePay:  breakdown.OvertimePay,
			GrossPay:     breakdown.GrossPay,
		},
		Deductions: payroll.DeductionsResponse{
			PAYE:            deductions.PAYE,
			NHIF:            deductions.NHIF,
			NSSF:            deductions.NSSF,
			TotalDeductions: deductions.TotalDeductions,
		},
		NetPay: netPay,
		ProjectedFull: payroll.ProjectedFullMonth{
			GrossPay:        fullBreakdown.GrossPay,
			TotalDeductions: fullDeductions.TotalDeductions,
			NetPay:          fullNet,
		},
	}, nil
}

func toListResponse(records []payroll.Record, total int64, filter payroll.PayrollFilter) payroll.ListPayrollResponse {
	responses := make([]payroll.PayrollRecordResponse, len(records))
	for i, rec := range records {
		responses[i] = payroll.ToPayrollRecordResponse(rec)
	}

	return payroll.ListPayrollResponse{
		Records: responses,
		Pagination: payroll.PaginationResponse{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		},
	}
}

func (p *PayrollServiceImpl) notifyPayrollEvent(ctx context.Context, recipientID, senderID, title, message string) {
	sender := senderID
	_ = p.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: recipientID,
		SenderID:    &sender,
		Category:    notification.CategoryPayroll,
		Title:       title,
		Message:     message,
	})
}
