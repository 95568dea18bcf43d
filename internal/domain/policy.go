package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Student loan plan names shipped with the default policy.
const (
	PlanNone = "No Plan"
	Plan2    = "Plan 2"
)

// TaxBand is one progressive income tax band. Upper is the band's gross
// upper bound as published, before the personal allowance shifts it; nil
// marks the unbounded top band.
type TaxBand struct {
	Name  string           `yaml:"name" json:"name"`
	Upper *decimal.Decimal `yaml:"upper" json:"upper,omitempty"`
	Rate  decimal.Decimal  `yaml:"rate" json:"rate"`
}

// PersonalAllowance is the tax-free allowance plus the income level where
// it starts tapering away at £1 for every £2 earned above it.
type PersonalAllowance struct {
	Amount         decimal.Decimal `yaml:"amount" json:"amount"`
	TaperThreshold decimal.Decimal `yaml:"taper_threshold" json:"taper_threshold"`
}

// NIThresholds holds the monthly National Insurance thresholds and the
// contribution rates either side of the upper one.
type NIThresholds struct {
	LowerMonthly decimal.Decimal `yaml:"lower_monthly" json:"lower_monthly"`
	UpperMonthly decimal.Decimal `yaml:"upper_monthly" json:"upper_monthly"`
	MainRate     decimal.Decimal `yaml:"main_rate" json:"main_rate"`
	UpperRate    decimal.Decimal `yaml:"upper_rate" json:"upper_rate"`
}

// StudentLoanPlan is a repayment plan: a flat rate on gross salary above
// an annual threshold. A nil threshold means the plan never repays.
type StudentLoanPlan struct {
	Name      string           `yaml:"name" json:"name"`
	Rate      decimal.Decimal  `yaml:"rate" json:"rate"`
	Threshold *decimal.Decimal `yaml:"threshold" json:"threshold,omitempty"`
}

// TaxPolicy bundles every figure the calculator needs for one tax year.
type TaxPolicy struct {
	TaxYear           string            `yaml:"tax_year" json:"tax_year"`
	PersonalAllowance PersonalAllowance `yaml:"personal_allowance" json:"personal_allowance"`
	TaxBands          []TaxBand         `yaml:"tax_bands" json:"tax_bands"`
	NI                NIThresholds      `yaml:"ni" json:"ni"`
	StudentLoanPlans  []StudentLoanPlan `yaml:"student_loan_plans" json:"student_loan_plans"`
	WeeksPerYear      decimal.Decimal   `yaml:"weeks_per_year" json:"weeks_per_year"`
}

// UKPolicy2024 returns the 2024/25 tax year figures the calculator ships
// with.
func UKPolicy2024() TaxPolicy {
	higher := decimal.NewFromInt(50270)
	additional := decimal.NewFromInt(125140)
	plan2Threshold := decimal.NewFromInt(27295)
	return TaxPolicy{
		TaxYear: "2024/25",
		PersonalAllowance: PersonalAllowance{
			Amount:         decimal.NewFromInt(12570),
			TaperThreshold: decimal.NewFromInt(100000),
		},
		TaxBands: []TaxBand{
			{Name: "Basic rate", Upper: &higher, Rate: decimal.NewFromFloat(0.20)},
			{Name: "Higher rate", Upper: &additional, Rate: decimal.NewFromFloat(0.40)},
			{Name: "Additional rate", Rate: decimal.NewFromFloat(0.45)},
		},
		NI: NIThresholds{
			LowerMonthly: decimal.NewFromInt(1048),
			UpperMonthly: decimal.NewFromInt(4189),
			MainRate:     decimal.NewFromFloat(0.08),
			UpperRate:    decimal.NewFromFloat(0.02),
		},
		StudentLoanPlans: []StudentLoanPlan{
			{Name: Plan2, Rate: decimal.NewFromFloat(0.09), Threshold: &plan2Threshold},
			{Name: PlanNone, Rate: decimal.Zero},
		},
		WeeksPerYear: DefaultWeeksPerYear,
	}
}

// Plan looks up a student loan plan by name. An empty name selects
// PlanNone.
func (p TaxPolicy) Plan(name string) (StudentLoanPlan, error) {
	if name == "" {
		name = PlanNone
	}
	for _, plan := range p.StudentLoanPlans {
		if plan.Name == name {
			return plan, nil
		}
	}
	return StudentLoanPlan{}, fmt.Errorf("%w: %q (supported: %s)",
		ErrUnknownPlan, name, strings.Join(p.PlanNames(), ", "))
}

// PlanNames lists the supported plan names in declaration order.
func (p TaxPolicy) PlanNames() []string {
	names := make([]string, len(p.StudentLoanPlans))
	for i, plan := range p.StudentLoanPlans {
		names[i] = plan.Name
	}
	return names
}

// Validate checks the policy is internally consistent.
func (p TaxPolicy) Validate() error {
	if p.PersonalAllowance.Amount.IsNegative() {
		return errors.New("personal allowance cannot be negative")
	}
	if p.PersonalAllowance.TaperThreshold.IsNegative() {
		return errors.New("personal allowance taper threshold cannot be negative")
	}
	if len(p.TaxBands) == 0 {
		return errors.New("at least one tax band is required")
	}
	one := decimal.NewFromInt(1)
	prev := decimal.Zero
	for i, band := range p.TaxBands {
		if band.Rate.IsNegative() || band.Rate.GreaterThan(one) {
			return fmt.Errorf("tax band %d: rate must be between 0 and 1", i+1)
		}
		if band.Upper == nil {
			if i != len(p.TaxBands)-1 {
				return fmt.Errorf("tax band %d: only the last band may be unbounded", i+1)
			}
			continue
		}
		if band.Upper.LessThanOrEqual(prev) {
			return fmt.Errorf("tax band %d: upper bound must exceed the previous band", i+1)
		}
		prev = *band.Upper
	}
	if p.NI.LowerMonthly.IsNegative() {
		return errors.New("ni lower threshold cannot be negative")
	}
	if p.NI.UpperMonthly.LessThanOrEqual(p.NI.LowerMonthly) {
		return errors.New("ni upper threshold must exceed the lower threshold")
	}
	if p.NI.MainRate.IsNegative() || p.NI.UpperRate.IsNegative() {
		return errors.New("ni rates cannot be negative")
	}
	if len(p.StudentLoanPlans) == 0 {
		return errors.New("at least one student loan plan is required")
	}
	for _, plan := range p.StudentLoanPlans {
		if plan.Rate.IsNegative() || plan.Rate.GreaterThan(one) {
			return fmt.Errorf("student loan plan %q: rate must be between 0 and 1", plan.Name)
		}
		if plan.Threshold != nil && plan.Threshold.IsNegative() {
			return fmt.Errorf("student loan plan %q: threshold cannot be negative", plan.Name)
		}
	}
	if !p.WeeksPerYear.IsPositive() {
		return errors.New("weeks per year must be positive")
	}
	return nil
}
