package payroll

import (
	"context"
)

// PayrollService defines business logic for payroll operations
type PayrollService interface {
	// GenerateForMonth creates one payroll record per employee for the
	// period. Employees that already have a record for the period, or
	// otherwise fail, are collected into the result's error list; the
	// batch never rolls back records already generated.
	GenerateForMonth(ctx context.Context, req GeneratePayrollRequest) (GenerateResultResponse, error)

	// ListPayrolls retrieves payroll records across employees (admin)
	ListPayrolls(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)

	// GetMyPayrolls retrieves the authenticated employee's records
	GetMyPayrolls(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)

	// GetPayroll retrieves a single record. Non-admin callers can only
	// read their own records.
	GetPayroll(ctx context.Context, id string) (PayrollRecordResponse, error)

	// UpdateStatus transitions a record's status. Setting Paid stamps
	// the paid date once; repeating Paid does not re-stamp it.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (PayrollRecordResponse, error)

	// DeletePayroll removes a record unless it is already Paid
	DeletePayroll(ctx context.Context, id string) error

	// CurrentMonthProjection estimates the authenticated employee's pay
	// for the running month from attendance recorded so far
	CurrentMonthProjection(ctx context.Context) (ProjectionResponse, error)
}
