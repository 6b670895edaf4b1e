package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wagepoint/wagepoint-api/internal/domain/payroll"
	"github.com/wagepoint/wagepoint-api/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.period_start, p.period_end, p.period_month, p.period_year,
	p.total_hours_worked, p.regular_hours, p.overtime_hours,
	p.days_present, p.days_late, p.days_absent,
	p.basic_salary, p.hourly_rate, p.overtime_rate, p.regular_pay, p.overtime_pay, p.gross_pay,
	p.paye, p.nhif, p.nssf, p.total_deductions, p.net_pay,
	p.status, p.processed_by, p.processed_date, p.paid_date, p.payslip_generated,
	p.created_at, p.updated_at
`

func scanPayroll(row pgx.Row, rec *payroll.Record, joined bool) error {
	dest := []interface{}{
		&rec.ID, &rec.EmployeeID, &rec.PeriodStart, &rec.PeriodEnd, &rec.PeriodMonth, &rec.PeriodYear,
		&rec.Summary.TotalHoursWorked, &rec.Summary.RegularHours, &rec.Summary.OvertimeHours,
		&rec.Summary.DaysPresent, &rec.Summary.DaysLate, &rec.Summary.DaysAbsent,
		&rec.Breakdown.BasicSalary, &rec.Breakdown.HourlyRate, &rec.Breakdown.OvertimeRate,
		&rec.Breakdown.RegularPay, &rec.Breakdown.OvertimePay, &rec.Breakdown.GrossPay,
		&rec.Deductions.PAYE, &rec.Deductions.NHIF, &rec.Deductions.NSSF,
		&rec.Deductions.TotalDeductions, &rec.NetPay,
		&rec.Status, &rec.ProcessedBy, &rec.ProcessedDate, &rec.PaidDate, &rec.PayslipGenerated,
		&rec.CreatedAt, &rec.UpdatedAt,
	}
	if joined {
		dest = append(dest, &rec.EmployeeName, &rec.EmployeeEmail)
	}
	return row.Scan(dest...)
}

// Create implements payroll.PayrollRepository.
func (p *payrollRepository) Create(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll_records (
			id, employee_id, period_start, period_end, period_month, period_year,
			total_hours_worked, regular_hours, overtime_hours,
			days_present, days_late, days_absent,
			basic_salary, hourly_rate, overtime_rate, regular_pay, overtime_pay, gross_pay,
			paye, nhif, nssf, total_deductions, net_pay,
			status, processed_by, processed_date, paid_date, payslip_generated
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9,
			$10, $11, $12,
			$13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23,
			$24, $25, $26, $27, $28
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.PeriodStart, rec.PeriodEnd, rec.PeriodMonth, rec.PeriodYear,
		rec.Summary.TotalHoursWorked, rec.Summary.RegularHours, rec.Summary.OvertimeHours,
		rec.Summary.DaysPresent, rec.Summary.DaysLate, rec.Summary.DaysAbsent,
		rec.Breakdown.BasicSalary, rec.Breakdown.HourlyRate, rec.Breakdown.OvertimeRate,
		rec.Breakdown.RegularPay, rec.Breakdown.OvertimePay, rec.Breakdown.GrossPay,
		rec.Deductions.PAYE, rec.Deductions.NHIF, rec.Deductions.NSSF,
		rec.Deductions.TotalDeductions, rec.NetPay,
		rec.Status, rec.ProcessedBy, rec.ProcessedDate, rec.PaidDate, rec.PayslipGenerated,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return payroll.Record{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.Record{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return rec, nil
}

// GetByID implements payroll.PayrollRepository.
func (p *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + payrollColumns + `, e.full_name, e.email
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var rec payroll.Record
	if err := scanPayroll(q.QueryRow(ctx, query, id), &rec, true); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// ExistsForPeriod implements payroll.PayrollRepository.
func (p *payrollRepository) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM payroll_records
			WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll period: %w", err)
	}

	return exists, nil
}

// Update implements payroll.PayrollRepository.
func (p *payrollRepository) Update(ctx context.Context, rec payroll.Record) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE payroll_records
		SET status = $2,
			processed_by = $3,
			processed_date = $4,
			paid_date = $5,
			payslip_generated = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID, rec.Status, rec.ProcessedBy, rec.ProcessedDate, rec.PaidDate, rec.PayslipGenerated,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}

// Delete implements payroll.PayrollRepository.
func (p *payrollRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}

// List implements payroll.PayrollRepository.
func (p *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Record, int64, error) {
	return p.list(ctx, filter, nil)
}

// ListByEmployee implements payroll.PayrollRepository.
func (p *payrollRepository) ListByEmployee(ctx context.Context, employeeID string, filter payroll.PayrollFilter) ([]payroll.Record, int64, error) {
	return p.list(ctx, filter, &employeeID)
}

func (p *payrollRepository) list(ctx context.Context, filter payroll.PayrollFilter, employeeID *string) ([]payroll.Record, int64, error) {
	q := GetQuerier(ctx, p.db)

	var conditions []string
	var args []interface{}

	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if employeeID != nil {
		add("p.employee_id = $%d", *employeeID)
	} else if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		add("p.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.Month != nil {
		add("p.period_month = $%d", *filter.Month)
	}
	if filter.Year != nil {
		add("p.period_year = $%d", *filter.Year)
	}
	if filter.Status != nil && *filter.Status != "" {
		add("p.status = $%d", *filter.Status)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + conditions[0]
		for _, c := range conditions[1:] {
			where += " AND " + c
		}
	}

	countQuery := `SELECT COUNT(*) FROM payroll_records p` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	query := `
		SELECT ` + payrollColumns + `, e.full_name, e.email
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id` + where + `
		ORDER BY p.period_year DESC, p.period_month DESC, e.full_name ASC
		LIMIT $` + fmt.Sprint(len(args)+1) + ` OFFSET $` + fmt.Sprint(len(args)+2)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		var rec payroll.Record
		if err := scanPayroll(rows, &rec, true); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}
