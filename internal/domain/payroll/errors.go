package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this period")
	ErrCannotDeletePaidRecord     = errors.New("cannot delete paid payroll record")
	ErrEmployeeNotFound           = errors.New("employee not found")
)
