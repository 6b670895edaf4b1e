package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tp(t time.Time) *time.Time { return &t }

func TestRecomputeHours(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return time.Date(2025, 3, 10, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name          string
		rec           Attendance
		totalHours    float64
		regularHours  float64
		overtimeHours float64
		pending       bool
	}{
		{
			name: "regular eight hour day",
			rec: Attendance{
				Date:    day,
				Status:  StatusPresent,
				ClockIn: tp(at(9, 0)), ClockOut: tp(at(17, 0)),
			},
			totalHours: 8, regularHours: 8, overtimeHours: 0,
		},
		{
			name: "short day stays under regular cap",
			rec: Attendance{
				Date:    day,
				Status:  StatusPresent,
				ClockIn: tp(at(9, 0)), ClockOut: tp(at(13, 30)),
			},
			totalHours: 4.5, regularHours: 4.5, overtimeHours: 0,
		},
		{
			name: "overtime beyond eight hours",
			rec: Attendance{
				Date:    day,
				Status:  StatusPresent,
				ClockIn: tp(at(8, 0)), ClockOut: tp(at(18, 30)),
			},
			totalHours: 10.5, regularHours: 8, overtimeHours: 2.5,
		},
		{
			name: "total hours rounded to two decimals",
			rec: Attendance{
				Date:    day,
				Status:  StatusPresent,
				ClockIn: tp(at(9, 0)), ClockOut: tp(time.Date(2025, 3, 10, 16, 20, 0, 0, time.UTC)),
			},
			// 7h20m = 7.333... rounds to 7.33
			totalHours: 7.33, regularHours: 7.0 + 20.0/60.0, overtimeHours: 0,
		},
		{
			name: "clock in only marks pending",
			rec: Attendance{
				Date:    day,
				Status:  StatusPresent,
				ClockIn: tp(at(9, 0)),
			},
			totalHours: 0, regularHours: 0, overtimeHours: 0,
			pending: true,
		},
		{
			name: "absent zeroes hours even with clock times",
			rec: Attendance{
				Date:    day,
				Status:  StatusAbsent,
				ClockIn: tp(at(9, 0)), ClockOut: tp(at(17, 0)),
			},
			totalHours: 0, regularHours: 0, overtimeHours: 0,
		},
		{
			name:       "no clock times leaves everything zero",
			rec:        Attendance{Date: day, Status: StatusLate},
			totalHours: 0, regularHours: 0, overtimeHours: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.rec
			RecomputeHours(&rec)

			assert.InDelta(t, tt.totalHours, rec.TotalHours, 1e-9)
			assert.InDelta(t, tt.regularHours, rec.RegularHours, 1e-9)
			assert.InDelta(t, tt.overtimeHours, rec.OvertimeHours, 1e-9)
			assert.Equal(t, tt.pending, rec.IsClockOutPending)
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("Present"))
	assert.True(t, IsValidStatus("Late"))
	assert.True(t, IsValidStatus("Absent"))
	assert.False(t, IsValidStatus("present"))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("OnLeave"))
}
