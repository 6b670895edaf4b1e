package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wagepoint/wagepoint-api/internal/domain/attendance"
	"github.com/wagepoint/wagepoint-api/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.status,
	a.clock_in, a.clock_out,
	a.total_hours, a.regular_hours, a.overtime_hours, a.is_clock_out_pending,
	a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row, att *attendance.Attendance) error {
	return row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status,
		&att.ClockIn, &att.ClockOut,
		&att.TotalHours, &att.RegularHours, &att.OvertimeHours, &att.IsClockOutPending,
		&att.CreatedAt, &att.UpdatedAt,
	)
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, status,
			clock_in, clock_out,
			total_hours, regular_hours, overtime_hours, is_clock_out_pending
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.Status,
		newAttendance.ClockIn,
		newAttendance.ClockOut,
		newAttendance.TotalHours,
		newAttendance.RegularHours,
		newAttendance.OvertimeHours,
		newAttendance.IsClockOutPending,
	).Scan(&newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.id = $1
	`

	var att attendance.Attendance
	if err := scanAttendance(q.QueryRow(ctx, query, id), &att); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	if err := scanAttendance(q.QueryRow(ctx, query, employeeID, date), &att); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET status = $2,
			clock_in = $3,
			clock_out = $4,
			total_hours = $5,
			regular_hours = $6,
			overtime_hours = $7,
			is_clock_out_pending = $8,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.Status,
		att.ClockIn,
		att.ClockOut,
		att.TotalHours,
		att.RegularHours,
		att.OvertimeHours,
		att.IsClockOutPending,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	where, args := buildAttendanceWhere(filter, nil)

	countQuery := `SELECT COUNT(*) FROM attendances a` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	query := `
		SELECT ` + attendanceColumns + `, e.full_name, e.email
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id` + where + `
		ORDER BY a.date DESC, e.full_name ASC
		LIMIT $` + fmt.Sprint(len(args)+1) + ` OFFSET $` + fmt.Sprint(len(args)+2)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status,
			&att.ClockIn, &att.ClockOut,
			&att.TotalHours, &att.RegularHours, &att.OvertimeHours, &att.IsClockOutPending,
			&att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.EmployeeEmail,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, total, rows.Err()
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	where, args := buildAttendanceWhere(filter, &employeeID)

	countQuery := `SELECT COUNT(*) FROM attendances a` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a` + where + `
		ORDER BY a.date DESC
		LIMIT $` + fmt.Sprint(len(args)+1) + ` OFFSET $` + fmt.Sprint(len(args)+2)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status,
			&att.ClockIn, &att.ClockOut,
			&att.TotalHours, &att.RegularHours, &att.OvertimeHours, &att.IsClockOutPending,
			&att.CreatedAt, &att.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, total, rows.Err()
}

// ListByEmployeeAndPeriod implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeAndPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date BETWEEN $2 AND $3
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for period: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status,
			&att.ClockIn, &att.ClockOut,
			&att.TotalHours, &att.RegularHours, &att.OvertimeHours, &att.IsClockOutPending,
			&att.CreatedAt, &att.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

func buildAttendanceWhere(filter attendance.AttendanceFilter, employeeID *string) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if employeeID != nil {
		add("a.employee_id = $%d", *employeeID)
	} else if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		add("a.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.Status != nil && *filter.Status != "" {
		add("a.status = $%d", *filter.Status)
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		add("a.date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		add("a.date <= $%d", *filter.EndDate)
	}

	if len(conditions) == 0 {
		return "", args
	}

	where := " WHERE " + conditions[0]
	for _, c := range conditions[1:] {
		where += " AND " + c
	}
	return where, args
}
