package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// Create creates a new employee. A duplicate email fails with
	// ErrEmailAlreadyExists.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email. Used by login.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// Update updates an existing employee
	Update(ctx context.Context, emp Employee) error

	// Delete removes an employee
	Delete(ctx context.Context, id string) error

	// List retrieves employees with filters and pagination
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// ListAll retrieves every employee. Payroll generation iterates this
	// regardless of employment status.
	ListAll(ctx context.Context) ([]Employee, error)
}
