package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ukpay/takehome/internal/domain"
)

// TakeHomeCalculator runs the full deduction pipeline for one profile
// under one tax policy. The result is computed once and memoized; build a
// fresh calculator to run different inputs.
type TakeHomeCalculator struct {
	profile domain.UserFinancialProfile
	policy  domain.TaxPolicy
	logger  Logger
	result  *domain.CalculationResult
}

// NewTakeHomeCalculator builds a calculator using the shipped UK 2024/25
// policy.
func NewTakeHomeCalculator(profile domain.UserFinancialProfile) *TakeHomeCalculator {
	return NewTakeHomeCalculatorWithPolicy(profile, domain.UKPolicy2024())
}

// NewTakeHomeCalculatorWithPolicy builds a calculator with a custom tax
// policy.
func NewTakeHomeCalculatorWithPolicy(profile domain.UserFinancialProfile, policy domain.TaxPolicy) *TakeHomeCalculator {
	return &TakeHomeCalculator{profile: profile, policy: policy, logger: NopLogger{}}
}

// SetLogger replaces the calculator's logger. Passing nil restores the
// no-op default.
func (c *TakeHomeCalculator) SetLogger(l Logger) {
	if l == nil {
		c.logger = NopLogger{}
		return
	}
	c.logger = l
}

// Calculate runs the pipeline, or returns the memoized result of an
// earlier run.
func (c *TakeHomeCalculator) Calculate() (*domain.CalculationResult, error) {
	if c.result != nil {
		return c.result, nil
	}
	if err := c.profile.Validate(); err != nil {
		return nil, err
	}
	if err := c.policy.Validate(); err != nil {
		return nil, fmt.Errorf("tax policy: %w", err)
	}
	plan, err := c.policy.Plan(c.profile.PlanOrDefault())
	if err != nil {
		return nil, err
	}

	gross := c.profile.GrossSalary
	pension := gross.Mul(c.profile.PensionPercent).Div(hundred)
	sacrifice := c.profile.SalarySacrificeMonthly.Mul(domain.MonthsPerYear)
	allowance := TaperedAllowance(c.policy.PersonalAllowance, gross)

	taxable := gross.Sub(pension).Sub(sacrifice).Sub(allowance)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	tax := IncomeTax(c.policy.TaxBands, taxable, allowance)
	ni := NationalInsurance(c.policy.NI, gross)
	loan := StudentLoan(plan, gross)

	net := gross.Sub(pension).Sub(sacrifice).Sub(tax).Sub(ni).Sub(loan)

	c.logger.Debugf("take-home pipeline: gross=%s allowance=%s taxable=%s tax=%s ni=%s loan=%s net=%s",
		gross, allowance, taxable, tax, ni, loan, net)

	wpy := c.policy.WeeksPerYear
	bills := domain.Monthly(c.profile.TotalMonthlyBills()).WithWeeksPerYear(wpy)
	spendable := c.annual(net).Sub(bills)
	expenses := domain.WeeklyWithFactor(c.profile.TotalWeeklyExpenses(), wpy)

	// The headline figure is anchored to the weekly view, so its annual
	// and monthly values can drift from spendable minus expenses by a
	// fraction of a penny.
	afterExpenses := domain.WeeklyWithFactor(spendable.Weekly().Sub(expenses.Weekly()), wpy)

	c.result = &domain.CalculationResult{
		GrossSalary:            c.annual(gross),
		PensionContribution:    c.annual(pension),
		SalarySacrifice:        c.annual(sacrifice),
		PersonalAllowance:      c.annual(allowance),
		TaxableIncome:          c.annual(taxable),
		Tax:                    c.annual(tax),
		NIContributions:        c.annual(ni),
		StudentLoanRepayment:   c.annual(loan),
		NetIncome:              c.annual(net),
		Bills:                  bills,
		SpendableIncome:        spendable,
		Expenses:               expenses,
		SpendableAfterExpenses: afterExpenses,
	}
	return c.result, nil
}

func (c *TakeHomeCalculator) annual(v decimal.Decimal) domain.PeriodAmount {
	return domain.Annual(v).WithWeeksPerYear(c.policy.WeeksPerYear)
}

// Compute is a one-shot calculation under the shipped UK 2024/25 policy.
func Compute(profile domain.UserFinancialProfile) (*domain.CalculationResult, error) {
	return NewTakeHomeCalculator(profile).Calculate()
}

// ComputeWithPolicy is a one-shot calculation under a custom policy.
func ComputeWithPolicy(profile domain.UserFinancialProfile, policy domain.TaxPolicy) (*domain.CalculationResult, error) {
	return NewTakeHomeCalculatorWithPolicy(profile, policy).Calculate()
}
