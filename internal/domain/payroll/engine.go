package payroll

import (
	"math"

	"github.com/shopspring/decimal"
)

// Fixed monthly baselines for pay purposes. Hours aggregated beyond the
// caps exist on the record but are not paid.
const (
	monthlyBaseHours = 160.0
	overtimeCapHours = 40.0
)

var overtimeMultiplier = d("1.5")

// Compute derives the full pay breakdown, statutory deductions, and net pay
// for one employee and one period from the basic salary and the period's
// attendance aggregate. It is a pure function: no stored state, no side
// effects, identical output for identical input. Callers must have rejected
// negative basic salaries at the record boundary.
func Compute(basicSalary decimal.Decimal, summary AttendanceSummary) (SalaryBreakdown, Deductions, decimal.Decimal) {
	hourlyRate := basicSalary.Div(decimal.NewFromFloat(monthlyBaseHours))
	overtimeRate := hourlyRate.Mul(overtimeMultiplier)

	regularPayHours := math.Min(summary.RegularHours, monthlyBaseHours)
	regularPay := decimal.NewFromFloat(regularPayHours).Mul(hourlyRate)

	overtimePayHours := math.Min(summary.OvertimeHours, overtimeCapHours)
	overtimePay := decimal.NewFromFloat(overtimePayHours).Mul(overtimeRate)

	grossPay := regularPay.Add(overtimePay)

	breakdown := SalaryBreakdown{
		BasicSalary:  basicSalary,
		HourlyRate:   hourlyRate,
		OvertimeRate: overtimeRate,
		RegularPay:   regularPay,
		OvertimePay:  overtimePay,
		GrossPay:     grossPay,
	}

	// Zero gross means nothing to deduct; skipping the tables here also
	// keeps net pay from going negative on an empty month.
	if grossPay.IsZero() {
		return breakdown, Deductions{
			PAYE:            decimal.Zero,
			NHIF:            decimal.Zero,
			NSSF:            decimal.Zero,
			TotalDeductions: decimal.Zero,
		}, decimal.Zero
	}

	deductions := Deductions{
		PAYE: CalculatePAYE(grossPay),
		NHIF: CalculateNHIF(grossPay),
		NSSF: CalculateNSSF(grossPay),
	}
	deductions.TotalDeductions = deductions.PAYE.Add(deductions.NHIF).Add(deductions.NSSF)

	netPay := grossPay.Sub(deductions.TotalDeductions)

	return breakdown, deductions, netPay
}

// Summarize folds a month of attendance records into the aggregate the
// engine consumes. Pending and absent days contribute their counters but no
// hours.
func Summarize(records []AttendanceDay) AttendanceSummary {
	var s AttendanceSummary
	for _, rec := range records {
		s.TotalHoursWorked += rec.TotalHours
		s.RegularHours += rec.RegularHours
		s.OvertimeHours += rec.OvertimeHours
		switch rec.Status {
		case "Present":
			s.DaysPresent++
		case "Late":
			s.DaysLate++
		case "Absent":
			s.DaysAbsent++
		}
	}
	return s
}

// AttendanceDay is the slice of an attendance record the payroll aggregate
// needs. Declared here so the engine does not import the attendance package.
type AttendanceDay struct {
	Status        string
	TotalHours    float64
	RegularHours  float64
	OvertimeHours float64
}
