package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn        = errors.New("attendance already recorded for today")
	ErrAlreadyClockedOut       = errors.New("already clocked out today")
	ErrNotClockedIn            = errors.New("no attendance record found for today")
	ErrAbsentCannotClockOut    = errors.New("cannot clock out of an absent day")
	ErrClockOutNotAfterClockIn = errors.New("clock-out time must be after clock-in time")
	ErrAttendanceNotFound      = errors.New("attendance record not found")
)
