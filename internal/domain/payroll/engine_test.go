package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFullMonthWithOvertime(t *testing.T) {
	basic := d("160000")
	summary := AttendanceSummary{
		TotalHoursWorked: 170,
		RegularHours:     160,
		OvertimeHours:    10,
		DaysPresent:      20,
	}

	breakdown, deductions, netPay := Compute(basic, summary)

	assert.True(t, breakdown.HourlyRate.Equal(d("1000")), "hourly rate %s", breakdown.HourlyRate)
	assert.True(t, breakdown.OvertimeRate.Equal(d("1500")), "overtime rate %s", breakdown.OvertimeRate)
	assert.True(t, breakdown.RegularPay.Equal(d("160000")), "regular pay %s", breakdown.RegularPay)
	assert.True(t, breakdown.OvertimePay.Equal(d("15000")), "overtime pay %s", breakdown.OvertimePay)
	assert.True(t, breakdown.GrossPay.Equal(d("175000")), "gross pay %s", breakdown.GrossPay)

	assert.True(t, deductions.PAYE.Equal(d("47283")), "paye %s", deductions.PAYE)
	assert.True(t, deductions.NHIF.Equal(d("1700")), "nhif %s", deductions.NHIF)
	assert.True(t, deductions.NSSF.Equal(d("1080")), "nssf %s", deductions.NSSF)
	assert.True(t, deductions.TotalDeductions.Equal(d("50063")), "total deductions %s", deductions.TotalDeductions)

	assert.True(t, netPay.Equal(d("124937")), "net pay %s", netPay)
}

func TestComputeCapsRegularAndOvertimeHours(t *testing.T) {
	basic := d("160000")
	summary := AttendanceSummary{
		RegularHours:  180, // above the 160 pay ceiling
		OvertimeHours: 55,  // above the 40 pay ceiling
	}

	breakdown, _, _ := Compute(basic, summary)

	assert.True(t, breakdown.RegularPay.Equal(d("160000")), "regular pay %s", breakdown.RegularPay)
	assert.True(t, breakdown.OvertimePay.Equal(d("60000")), "overtime pay %s", breakdown.OvertimePay)
	assert.True(t, breakdown.GrossPay.Equal(d("220000")), "gross pay %s", breakdown.GrossPay)
}

func TestComputeZeroGrossZeroesEverything(t *testing.T) {
	breakdown, deductions, netPay := Compute(d("50000"), AttendanceSummary{DaysAbsent: 22})

	assert.True(t, breakdown.GrossPay.IsZero())
	assert.True(t, deductions.PAYE.IsZero())
	assert.True(t, deductions.NHIF.IsZero())
	assert.True(t, deductions.NSSF.IsZero())
	assert.True(t, deductions.TotalDeductions.IsZero())
	assert.True(t, netPay.IsZero())
}

func TestComputeIsDeterministic(t *testing.T) {
	basic := d("87500")
	summary := AttendanceSummary{
		TotalHoursWorked: 151.25,
		RegularHours:     144,
		OvertimeHours:    7.25,
		DaysPresent:      18,
		DaysLate:         2,
	}

	b1, d1, n1 := Compute(basic, summary)
	b2, d2, n2 := Compute(basic, summary)

	assert.True(t, b1.GrossPay.Equal(b2.GrossPay))
	assert.True(t, d1.TotalDeductions.Equal(d2.TotalDeductions))
	assert.True(t, n1.Equal(n2))
}

func TestComputeNetPayIsGrossMinusDeductions(t *testing.T) {
	for _, basicStr := range []string{"20000", "48000", "160000", "950000"} {
		basic := d(basicStr)
		summary := AttendanceSummary{RegularHours: 160, OvertimeHours: 12}

		breakdown, deductions, netPay := Compute(basic, summary)

		require.True(t, breakdown.GrossPay.IsPositive())
		assert.True(t, netPay.Equal(breakdown.GrossPay.Sub(deductions.TotalDeductions)),
			"basic %s: net %s != gross %s - deductions %s",
			basicStr, netPay, breakdown.GrossPay, deductions.TotalDeductions)
	}
}

func TestSummarize(t *testing.T) {
	days := []AttendanceDay{
		{Status: "Present", TotalHours: 8, RegularHours: 8},
		{Status: "Present", TotalHours: 10.5, RegularHours: 8, OvertimeHours: 2.5},
		{Status: "Late", TotalHours: 6, RegularHours: 6},
		{Status: "Absent"},
	}

	s := Summarize(days)

	assert.InDelta(t, 24.5, s.TotalHoursWorked, 1e-9)
	assert.InDelta(t, 22, s.RegularHours, 1e-9)
	assert.InDelta(t, 2.5, s.OvertimeHours, 1e-9)
	assert.Equal(t, 2, s.DaysPresent)
	assert.Equal(t, 1, s.DaysLate)
	assert.Equal(t, 1, s.DaysAbsent)
}
