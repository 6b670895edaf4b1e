package payroll

import "github.com/shopspring/decimal"

// The statutory deduction schedules live here as ordered tables so the
// bracket edges can be audited and tested independently of the pay flow.
// Amounts are monthly KES.

// payeBand is one marginal income-tax band. UpTo is the inclusive upper
// edge of the band; the final band is open-ended and marked by a zero UpTo.
type payeBand struct {
	UpTo decimal.Decimal
	Rate decimal.Decimal
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic("payroll: bad table literal " + s)
	}
	return v
}

var payeBands = []payeBand{
	{UpTo: d("24000"), Rate: d("0.10")},
	{UpTo: d("32333"), Rate: d("0.25")},
	{UpTo: d("500000"), Rate: d("0.30")},
	{UpTo: d("800000"), Rate: d("0.325")},
	{Rate: d("0.35")},
}

// CalculatePAYE returns the progressive income tax on a monthly gross,
// rounded to the nearest whole unit. Each band contributes its full width
// times its marginal rate until the band containing gross, which
// contributes only the portion of gross above the previous edge.
func CalculatePAYE(gross decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	lower := decimal.Zero

	for _, band := range payeBands {
		if band.UpTo.IsPositive() && gross.GreaterThan(band.UpTo) {
			tax = tax.Add(band.UpTo.Sub(lower).Mul(band.Rate))
			lower = band.UpTo
			continue
		}
		tax = tax.Add(gross.Sub(lower).Mul(band.Rate))
		break
	}

	return tax.Round(0)
}

// nhifTier is one row of the health-insurance step table. Below is the
// exclusive upper bound; gross at or above the last Below pays the
// open-ended fee.
type nhifTier struct {
	Below decimal.Decimal
	Fee   decimal.Decimal
}

var nhifTiers = []nhifTier{
	{Below: d("6000"), Fee: d("150")},
	{Below: d("8000"), Fee: d("300")},
	{Below: d("12000"), Fee: d("400")},
	{Below: d("15000"), Fee: d("500")},
	{Below: d("20000"), Fee: d("600")},
	{Below: d("25000"), Fee: d("750")},
	{Below: d("30000"), Fee: d("850")},
	{Below: d("35000"), Fee: d("900")},
	{Below: d("40000"), Fee: d("950")},
	{Below: d("45000"), Fee: d("1000")},
	{Below: d("50000"), Fee: d("1100")},
	{Below: d("60000"), Fee: d("1200")},
	{Below: d("70000"), Fee: d("1300")},
	{Below: d("80000"), Fee: d("1400")},
	{Below: d("90000"), Fee: d("1500")},
	{Below: d("100000"), Fee: d("1600")},
}

// nhifCeilingFee applies to any gross at or above the last tier bound.
var nhifCeilingFee = d("1700")

// CalculateNHIF returns the flat health-insurance fee for a monthly gross.
func CalculateNHIF(gross decimal.Decimal) decimal.Decimal {
	for _, tier := range nhifTiers {
		if gross.LessThan(tier.Below) {
			return tier.Fee
		}
	}
	return nhifCeilingFee
}

var (
	nssfRate = d("0.06")
	nssfCap  = d("1080")
)

// CalculateNSSF returns the social-security contribution for a monthly
// gross: a flat percentage capped at a fixed ceiling.
func CalculateNSSF(gross decimal.Decimal) decimal.Decimal {
	contribution := gross.Mul(nssfRate)
	if contribution.GreaterThan(nssfCap) {
		return nssfCap
	}
	return contribution
}
