package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ukpay/takehome/internal/domain"
)

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// TaperedAllowance returns the personal allowance after the high-income
// taper: £1 of allowance is lost for every £2 of gross salary above the
// taper threshold, down to a floor of zero. The taper looks at gross
// salary before pension or salary sacrifice deductions.
func TaperedAllowance(pa domain.PersonalAllowance, grossSalary decimal.Decimal) decimal.Decimal {
	if grossSalary.LessThan(pa.TaperThreshold) {
		return pa.Amount
	}
	allowance := pa.Amount.Sub(grossSalary.Sub(pa.TaperThreshold).Div(two))
	if allowance.IsNegative() {
		return decimal.Zero
	}
	return allowance
}

// IncomeTax applies the progressive bands to taxable income. Band upper
// bounds are quoted gross, so each is reduced by the personal allowance
// before the band widths are measured.
func IncomeTax(bands []domain.TaxBand, taxableIncome, allowance decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	remaining := taxableIncome
	lower := decimal.Zero

	for _, band := range bands {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		if band.Upper == nil {
			tax = tax.Add(remaining.Mul(band.Rate))
			break
		}
		upper := band.Upper.Sub(allowance)
		size := upper.Sub(lower)
		if size.LessThanOrEqual(decimal.Zero) {
			lower = upper
			continue
		}
		if remaining.LessThanOrEqual(size) {
			tax = tax.Add(remaining.Mul(band.Rate))
			break
		}
		tax = tax.Add(size.Mul(band.Rate))
		remaining = remaining.Sub(size)
		lower = upper
	}
	return tax
}

// NationalInsurance computes annual employee NI from annual gross salary.
// The thresholds are monthly: nothing is due at or below the lower one,
// the main rate applies between the two, and earnings above the upper one
// pay the upper rate on the excess.
func NationalInsurance(ni domain.NIThresholds, grossSalary decimal.Decimal) decimal.Decimal {
	monthly := grossSalary.Div(domain.MonthsPerYear)
	lowerAnnual := ni.LowerMonthly.Mul(domain.MonthsPerYear)
	upperAnnual := ni.UpperMonthly.Mul(domain.MonthsPerYear)

	switch {
	case monthly.LessThanOrEqual(ni.LowerMonthly):
		return decimal.Zero
	case monthly.LessThanOrEqual(ni.UpperMonthly):
		return ni.MainRate.Mul(grossSalary.Sub(lowerAnnual))
	default:
		banded := ni.MainRate.Mul(upperAnnual.Sub(lowerAnnual))
		return banded.Add(ni.UpperRate.Mul(grossSalary.Sub(upperAnnual)))
	}
}

// StudentLoan computes the annual repayment under a plan: the plan rate
// on gross salary above the plan threshold, never negative. Plans with no
// threshold never repay.
func StudentLoan(plan domain.StudentLoanPlan, grossSalary decimal.Decimal) decimal.Decimal {
	if plan.Threshold == nil {
		return decimal.Zero
	}
	due := plan.Rate.Mul(grossSalary.Sub(*plan.Threshold))
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}
