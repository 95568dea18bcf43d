package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ukpay/takehome/internal/domain"
)

// SetPensionPercent changes the pension contribution percentage.
// This is useful for exploring "pay more into the pension" scenarios.
type SetPensionPercent struct {
	Percent decimal.Decimal // New contribution as a percentage of gross (0 to 100)
}

func (sp *SetPensionPercent) Name() string {
	return "set_pension"
}

func (sp *SetPensionPercent) Description() string {
	return fmt.Sprintf("Set pension contribution to %s%% of gross", sp.Percent)
}

func (sp *SetPensionPercent) Validate(base domain.UserFinancialProfile) error {
	if sp.Percent.IsNegative() || sp.Percent.GreaterThan(decimal.NewFromInt(100)) {
		return NewVariantError(sp.Name(), "validate", fmt.Sprintf("percentage must be between 0 and 100, got %s", sp.Percent), nil)
	}
	return nil
}

func (sp *SetPensionPercent) Apply(base domain.UserFinancialProfile) (domain.UserFinancialProfile, error) {
	modified := base
	modified.PensionPercent = sp.Percent
	return modified, nil
}

// SetSalarySacrifice changes the monthly salary sacrifice amount.
type SetSalarySacrifice struct {
	Monthly decimal.Decimal // New sacrifice per month
}

func (ss *SetSalarySacrifice) Name() string {
	return "set_salary_sacrifice"
}

func (ss *SetSalarySacrifice) Description() string {
	return fmt.Sprintf("Set salary sacrifice to %s a month", domain.FormatGBP(ss.Monthly))
}

func (ss *SetSalarySacrifice) Validate(base domain.UserFinancialProfile) error {
	if ss.Monthly.IsNegative() {
		return NewVariantError(ss.Name(), "validate", fmt.Sprintf("monthly amount must be non-negative, got %s", ss.Monthly), nil)
	}
	return nil
}

func (ss *SetSalarySacrifice) Apply(base domain.UserFinancialProfile) (domain.UserFinancialProfile, error) {
	modified := base
	modified.SalarySacrificeMonthly = ss.Monthly
	return modified, nil
}

// SetStudentLoanPlan switches the student loan repayment plan.
// Plan membership is checked against the active policy at calculation
// time, so an unknown plan name surfaces when the scenario is computed.
type SetStudentLoanPlan struct {
	Plan string // Plan name, e.g. "Plan 2" or "No Plan"
}

func (sl *SetStudentLoanPlan) Name() string {
	return "set_student_loan_plan"
}

func (sl *SetStudentLoanPlan) Description() string {
	return fmt.Sprintf("Switch student loan repayments to %s", sl.Plan)
}

func (sl *SetStudentLoanPlan) Validate(base domain.UserFinancialProfile) error {
	if sl.Plan == "" {
		return NewVariantError(sl.Name(), "validate", "plan name cannot be empty", nil)
	}
	return nil
}

func (sl *SetStudentLoanPlan) Apply(base domain.UserFinancialProfile) (domain.UserFinancialProfile, error) {
	modified := base
	modified.StudentLoanPlan = sl.Plan
	return modified, nil
}

// SetGrossSalary sets the gross salary to an absolute figure.
// Unlike AdjustGrossSalary which is relative, this sets an exact amount.
type SetGrossSalary struct {
	Salary decimal.Decimal // The new annual gross salary
}

func (sg *SetGrossSalary) Name() string {
	return "set_salary"
}

func (sg *SetGrossSalary) Description() string {
	return fmt.Sprintf("Set gross salary to %s", domain.FormatGBP(sg.Salary))
}

func (sg *SetGrossSalary) Validate(base domain.UserFinancialProfile) error {
	if sg.Salary.IsNegative() {
		return NewVariantError(sg.Name(), "validate", fmt.Sprintf("salary must be non-negative, got %s", sg.Salary), nil)
	}
	return nil
}

func (sg *SetGrossSalary) Apply(base domain.UserFinancialProfile) (domain.UserFinancialProfile, error) {
	modified := base
	modified.GrossSalary = sg.Salary
	return modified, nil
}

// AdjustGrossSalary moves the gross salary up or down by a fixed amount.
// This is useful for exploring "what would a £5,000 raise change" scenarios.
type AdjustGrossSalary struct {
	Delta decimal.Decimal // Amount to add (negative to reduce)
}

func (ag *AdjustGrossSalary) Name() string {
	return "adjust_salary"
}

func (ag *AdjustGrossSalary) Description() string {
	if ag.Delta.IsNegative() {
		return fmt.Sprintf("Reduce gross salary by %s", domain.FormatGBP(ag.Delta.Abs()))
	}
	return fmt.Sprintf("Increase gross salary by %s", domain.FormatGBP(ag.Delta))
}

func (ag *AdjustGrossSalary) Validate(base domain.UserFinancialProfile) error {
	if base.GrossSalary.Add(ag.Delta).IsNegative() {
		return NewVariantError(ag.Name(), "validate",
			fmt.Sprintf("adjustment %s would make the gross salary negative", ag.Delta), nil)
	}
	return nil
}

func (ag *AdjustGrossSalary) Apply(base domain.UserFinancialProfile) (domain.UserFinancialProfile, error) {
	modified := base
	modified.GrossSalary = base.GrossSalary.Add(ag.Delta)
	return modified, nil
}
