package employee

import (
	"context"
)

// EmployeeService defines business logic for the employee directory
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	GetMe(ctx context.Context) (EmployeeResponse, error)
}
