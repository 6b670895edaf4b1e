package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wagepoint/wagepoint-api/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName         string           `json:"full_name"`
	Email            string           `json:"email"`
	Password         string           `json:"password"`
	Role             string           `json:"role"`
	EmploymentStatus string           `json:"employment_status"`
	Position         *string          `json:"position,omitempty"`
	Department       *string          `json:"department,omitempty"`
	BasicSalary      *decimal.Decimal `json:"basic_salary"`
	BankName         *string          `json:"bank_name,omitempty"`
	BankAccountNo    *string          `json:"bank_account_number,omitempty"`
	BankBranchCode   *string          `json:"bank_branch_code,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Role == "" {
		r.Role = string(RoleEmployee)
	} else if !IsValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: employee, admin",
		})
	}

	if r.EmploymentStatus == "" {
		r.EmploymentStatus = string(StatusActive)
	} else if !IsValidEmploymentStatus(r.EmploymentStatus) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "employment_status must be one of: Active, On Leave, Terminated",
		})
	}

	if r.BasicSalary == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary is required",
		})
	} else if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID               string           `json:"-"`
	FullName         *string          `json:"full_name,omitempty"`
	Position         *string          `json:"position,omitempty"`
	Department       *string          `json:"department,omitempty"`
	EmploymentStatus *string          `json:"employment_status,omitempty"`
	BasicSalary      *decimal.Decimal `json:"basic_salary,omitempty"`
	BankName         *string          `json:"bank_name,omitempty"`
	BankAccountNo    *string          `json:"bank_account_number,omitempty"`
	BankBranchCode   *string          `json:"bank_branch_code,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	} else if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.EmploymentStatus != nil && !IsValidEmploymentStatus(*r.EmploymentStatus) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "employment_status must be one of: Active, On Leave, Terminated",
		})
	}

	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID               string          `json:"id"`
	FullName         string          `json:"full_name"`
	Email            string          `json:"email"`
	Role             string          `json:"role"`
	EmploymentStatus string          `json:"employment_status"`
	Position         *string         `json:"position,omitempty"`
	Department       *string         `json:"department,omitempty"`
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	BankName         *string         `json:"bank_name,omitempty"`
	BankAccountNo    *string         `json:"bank_account_number,omitempty"`
	BankBranchCode   *string         `json:"bank_branch_code,omitempty"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		FullName:         e.FullName,
		Email:            e.Email,
		Role:             string(e.Role),
		EmploymentStatus: string(e.EmploymentStatus),
		Position:         e.Position,
		Department:       e.Department,
		BasicSalary:      e.BasicSalary,
		BankName:         e.BankName,
		BankAccountNo:    e.BankAccountNo,
		BankBranchCode:   e.BankBranchCode,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        e.UpdatedAt.Format(time.RFC3339),
	}
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	Pagination PaginationResponse `json:"pagination"`
}

type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type EmployeeFilter struct {
	Search           *string `json:"search,omitempty"` // matches name or email
	Department       *string `json:"department,omitempty"`
	EmploymentStatus *string `json:"employment_status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EmployeeFilter) Validate() error {
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

	if f.EmploymentStatus != nil && *f.EmploymentStatus != "" && !IsValidEmploymentStatus(*f.EmploymentStatus) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "employment_status must be one of: Active, On Leave, Terminated",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
