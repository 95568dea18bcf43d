package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LabeledAmount is a named money figure, such as one household bill.
type LabeledAmount struct {
	Name   string          `yaml:"name" json:"name"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// UserFinancialProfile is everything the calculator needs to know about
// one person: salary, workplace deductions, and regular outgoings.
// MonthlyBills are quoted per month, WeeklyExpenses per week.
type UserFinancialProfile struct {
	GrossSalary            decimal.Decimal `yaml:"gross_salary" json:"gross_salary"`
	PensionPercent         decimal.Decimal `yaml:"pension_contribution_percentage" json:"pension_contribution_percentage"`
	SalarySacrificeMonthly decimal.Decimal `yaml:"salary_sacrifice_monthly" json:"salary_sacrifice_monthly"`
	StudentLoanPlan        string          `yaml:"student_loan_plan" json:"student_loan_plan"`
	MonthlyBills           []LabeledAmount `yaml:"monthly_bills" json:"monthly_bills,omitempty"`
	WeeklyExpenses         []LabeledAmount `yaml:"weekly_expenses" json:"weekly_expenses,omitempty"`
}

// Validate checks the profile holds calculable values. Plan membership is
// checked against the active policy at calculation time, not here.
func (p *UserFinancialProfile) Validate() error {
	if p.GrossSalary.IsNegative() {
		return fmt.Errorf("%w: gross salary cannot be negative", ErrInvalidProfile)
	}
	if p.PensionPercent.IsNegative() || p.PensionPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: pension contribution must be between 0 and 100 percent", ErrInvalidProfile)
	}
	if p.SalarySacrificeMonthly.IsNegative() {
		return fmt.Errorf("%w: salary sacrifice cannot be negative", ErrInvalidProfile)
	}
	for _, b := range p.MonthlyBills {
		if b.Amount.IsNegative() {
			return fmt.Errorf("%w: monthly bill %q cannot be negative", ErrInvalidProfile, b.Name)
		}
	}
	for _, e := range p.WeeklyExpenses {
		if e.Amount.IsNegative() {
			return fmt.Errorf("%w: weekly expense %q cannot be negative", ErrInvalidProfile, e.Name)
		}
	}
	return nil
}

// TotalMonthlyBills sums the monthly bill amounts.
func (p *UserFinancialProfile) TotalMonthlyBills() decimal.Decimal {
	total := decimal.Zero
	for _, b := range p.MonthlyBills {
		total = total.Add(b.Amount)
	}
	return total
}

// TotalWeeklyExpenses sums the weekly expense amounts.
func (p *UserFinancialProfile) TotalWeeklyExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range p.WeeklyExpenses {
		total = total.Add(e.Amount)
	}
	return total
}

// PlanOrDefault returns the profile's student loan plan name, or PlanNone
// when unset.
func (p *UserFinancialProfile) PlanOrDefault() string {
	if p.StudentLoanPlan == "" {
		return PlanNone
	}
	return p.StudentLoanPlan
}
