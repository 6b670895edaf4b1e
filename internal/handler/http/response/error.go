package response

import (
	"errors"
	"net/http"

	"github.com/wagepoint/wagepoint-api/internal/domain/attendance"
	"github.com/wagepoint/wagepoint-api/internal/domain/auth"
	"github.com/wagepoint/wagepoint-api/internal/domain/employee"
	"github.com/wagepoint/wagepoint-api/internal/domain/leave"
	"github.com/wagepoint/wagepoint-api/internal/domain/payroll"
	"github.com/wagepoint/wagepoint-api/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		NotFound(w, "No clock-in record found for today")
	case errors.Is(err, attendance.ErrAbsentCannotClockOut):
		BusinessRuleViolation(w, "Cannot clock out of an absent day")
	case errors.Is(err, attendance.ErrClockOutNotAfterClockIn):
		BusinessRuleViolation(w, "Clock-out time must be after clock-in time")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this period")
	case errors.Is(err, payroll.ErrCannotDeletePaidRecord):
		BusinessRuleViolation(w, "Paid payroll records cannot be deleted")
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "A pending leave request already covers part of this period")
	case errors.Is(err, leave.ErrLeaveAlreadyReviewed):
		BusinessRuleViolation(w, "Leave request has already been reviewed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
