package attendance

import "math"

// workdayHours is the regular-hours ceiling for a single day; anything above
// it counts as overtime.
const workdayHours = 8.0

// RecomputeHours derives the hour fields of rec from its clock times and
// status. The lifecycle manager calls it immediately before every persist;
// it is never triggered implicitly by the storage layer.
//
// Rules:
//   - Absent days have zero hours and are never pending, whatever the clock
//     fields hold.
//   - A record with only a clock-in is pending; its hour fields are left
//     untouched (zero on creation).
//   - With both clocks set, total hours is the fractional difference rounded
//     to two decimals, regular hours is capped at eight, and the remainder
//     is overtime. Callers must have validated clockOut > clockIn.
func RecomputeHours(rec *Attendance) {
	switch {
	case rec.Status == StatusAbsent:
		rec.TotalHours = 0
		rec.RegularHours = 0
		rec.OvertimeHours = 0
		rec.IsClockOutPending = false
	case rec.ClockIn != nil && rec.ClockOut != nil:
		diff := rec.ClockOut.Sub(*rec.ClockIn).Hours()
		rec.TotalHours = math.Round(diff*100) / 100
		rec.RegularHours = math.Min(diff, workdayHours)
		rec.OvertimeHours = math.Max(0, diff-workdayHours)
		rec.IsClockOutPending = false
	case rec.ClockIn != nil:
		rec.IsClockOutPending = true
	}
}
