package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role enum
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// EmploymentStatus enum
type EmploymentStatus string

const (
	StatusActive     EmploymentStatus = "Active"
	StatusOnLeave    EmploymentStatus = "On Leave"
	StatusTerminated EmploymentStatus = "Terminated"
)

func IsValidEmploymentStatus(s string) bool {
	switch EmploymentStatus(s) {
	case StatusActive, StatusOnLeave, StatusTerminated:
		return true
	}
	return false
}

// Employee represents an employee entity. BasicSalary drives the payroll
// hourly rate and is never negative.
type Employee struct {
	ID               string
	FullName         string
	Email            string
	PasswordHash     string
	Role             Role
	EmploymentStatus EmploymentStatus
	Position         *string
	Department       *string
	BasicSalary      decimal.Decimal
	BankName         *string
	BankAccountNo    *string
	BankBranchCode   *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
