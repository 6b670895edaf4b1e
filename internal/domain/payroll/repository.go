package payroll

import (
	"context"
)

// PayrollRepository defines data access methods for payroll records.
type PayrollRepository interface {
	// Create creates a new payroll record. The unique index on
	// (employee_id, period_month, period_year) makes Create fail with
	// ErrPayrollRecordAlreadyExists for a duplicate period.
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID retrieves a payroll record by ID, joined with employee
	// name and email
	GetByID(ctx context.Context, id string) (Record, error)

	// ExistsForPeriod reports whether a record exists for the employee
	// and period. Advisory check; the unique index is the real guard.
	ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error)

	// Update persists status, timestamps, and payslip flag changes
	Update(ctx context.Context, record Record) error

	// Delete removes a payroll record
	Delete(ctx context.Context, id string) error

	// List retrieves payroll records with filters and pagination
	List(ctx context.Context, filter PayrollFilter) ([]Record, int64, error)

	// ListByEmployee retrieves one employee's payroll records
	ListByEmployee(ctx context.Context, employeeID string, filter PayrollFilter) ([]Record, int64, error)
}
