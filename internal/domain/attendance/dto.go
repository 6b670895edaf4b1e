package attendance

import (
	"time"

	"github.com/wagepoint/wagepoint-api/internal/pkg/validator"
)

type ClockInRequest struct {
	Status      string  `json:"status"`
	ClockInTime *string `json:"clock_in_time,omitempty"` // RFC 3339; defaults to now
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Late, Absent",
		})
	}

	if r.ClockInTime != nil && *r.ClockInTime != "" {
		if _, valid := validator.IsValidDateTime(*r.ClockInTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_in_time",
				Message: "clock_in_time must be an RFC 3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	ClockOutTime *string `json:"clock_out_time,omitempty"` // RFC 3339; defaults to now
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ClockOutTime != nil && *r.ClockOutTime != "" {
		if _, valid := validator.IsValidDateTime(*r.ClockOutTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out_time",
				Message: "clock_out_time must be an RFC 3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MarkAttendanceRequest is the legacy single-shot endpoint: it upserts
// today's record instead of failing on an existing one.
type MarkAttendanceRequest struct {
	Status      string  `json:"status"`
	ClockInTime *string `json:"clock_in_time,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Late, Absent",
		})
	}

	if r.ClockInTime != nil && *r.ClockInTime != "" {
		if _, valid := validator.IsValidDateTime(*r.ClockInTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_in_time",
				Message: "clock_in_time must be an RFC 3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	EmployeeEmail     *string `json:"employee_email,omitempty"`
	Date              string  `json:"date"`
	Status            string  `json:"status"`
	ClockIn           *string `json:"clock_in,omitempty"`
	ClockOut          *string `json:"clock_out,omitempty"`
	TotalHours        float64 `json:"total_hours"`
	RegularHours      float64 `json:"regular_hours"`
	OvertimeHours     float64 `json:"overtime_hours"`
	IsClockOutPending bool    `json:"is_clock_out_pending"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

func ToAttendanceResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:                a.ID,
		EmployeeID:        a.EmployeeID,
		EmployeeName:      a.EmployeeName,
		EmployeeEmail:     a.EmployeeEmail,
		Date:              a.Date.Format("2006-01-02"),
		Status:            string(a.Status),
		TotalHours:        a.TotalHours,
		RegularHours:      a.RegularHours,
		OvertimeHours:     a.OvertimeHours,
		IsClockOutPending: a.IsClockOutPending,
		CreatedAt:         a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         a.UpdatedAt.Format(time.RFC3339),
	}

	if a.ClockIn != nil {
		s := a.ClockIn.Format(time.RFC3339)
		resp.ClockIn = &s
	}
	if a.ClockOut != nil {
		s := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &s
	}

	return resp
}

type ListAttendanceResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
	Pagination  PaginationResponse   `json:"pagination"`
}

type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type AttendanceFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status     *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
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

	if f.Status != nil && *f.Status != "" && !IsValidStatus(*f.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Late, Absent",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
