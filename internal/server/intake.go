package server

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"

	"github.com/ukpay/takehome/internal/domain"
)

// Form field names, in the order the calculator form presents them.
// The two "other" fields carry suffixes so they stay distinct in the form.
var (
	monthlyBillFields = []string{
		"rent", "council_tax", "electricity", "gas", "water",
		"internet", "phone", "subscriptions", "other_monthly",
	}
	weeklyExpenseFields = []string{
		"groceries", "eating_out", "travel", "other_weekly",
	}
)

func itemName(field string) string {
	if field == "other_monthly" || field == "other_weekly" {
		return "other"
	}
	return field
}

// profileFromForm builds a financial profile from POSTed form values.
// gross_salary is required; every other field left blank counts as zero.
func profileFromForm(args *fasthttp.Args) (domain.UserFinancialProfile, error) {
	var profile domain.UserFinancialProfile

	grossRaw := strings.TrimSpace(string(args.Peek("gross_salary")))
	if grossRaw == "" {
		return profile, fmt.Errorf("gross_salary is required")
	}
	gross, err := decimal.NewFromString(grossRaw)
	if err != nil {
		return profile, fmt.Errorf("gross_salary: invalid number %q", grossRaw)
	}
	profile.GrossSalary = gross

	if profile.PensionPercent, err = optionalAmount(args, "pension_contribution_percentage"); err != nil {
		return profile, err
	}
	if profile.SalarySacrificeMonthly, err = optionalAmount(args, "salary_sacrifice"); err != nil {
		return profile, err
	}

	profile.StudentLoanPlan = strings.TrimSpace(string(args.Peek("student_loan_plan")))
	if profile.StudentLoanPlan == "" {
		profile.StudentLoanPlan = domain.PlanNone
	}

	for _, field := range monthlyBillFields {
		raw := strings.TrimSpace(string(args.Peek(field)))
		if raw == "" {
			continue
		}
		amount, err := parseAmount(field, raw)
		if err != nil {
			return profile, err
		}
		profile.MonthlyBills = append(profile.MonthlyBills, domain.LabeledAmount{
			Name:   itemName(field),
			Amount: amount,
		})
	}

	for _, field := range weeklyExpenseFields {
		raw := strings.TrimSpace(string(args.Peek(field)))
		if raw == "" {
			continue
		}
		amount, err := parseAmount(field, raw)
		if err != nil {
			return profile, err
		}
		profile.WeeklyExpenses = append(profile.WeeklyExpenses, domain.LabeledAmount{
			Name:   itemName(field),
			Amount: amount,
		})
	}

	if err := profile.Validate(); err != nil {
		return profile, err
	}

	return profile, nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: invalid number %q", field, raw)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s: must be non-negative", field)
	}
	return amount, nil
}

func optionalAmount(args *fasthttp.Args, field string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(string(args.Peek(field)))
	if raw == "" {
		return decimal.Zero, nil
	}
	return parseAmount(field, raw)
}
