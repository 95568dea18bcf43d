// Sweeps gross salaries and prints effective and marginal deduction
// rates under the built-in policy. Handy for eyeballing the band edges
// and the allowance taper above £100,000.
package main

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/ukpay/takehome/internal/calculation"
	"github.com/ukpay/takehome/internal/domain"
)

func main() {
	policy := domain.UKPolicy2024()

	fmt.Printf("Deduction rates, %s rules (no pension, no student loan):\n\n", policy.TaxYear)
	fmt.Printf("%14s %14s %14s %11s %11s\n", "Gross", "Net", "Deductions", "Effective", "Marginal")

	step := decimal.NewFromInt(5000)
	probe := decimal.NewFromInt(100)
	hundred := decimal.NewFromInt(100)
	last := decimal.NewFromInt(200000)

	for gross := decimal.NewFromInt(10000); gross.LessThanOrEqual(last); gross = gross.Add(step) {
		net := netFor(gross, policy)
		netAbove := netFor(gross.Add(probe), policy)

		deductions := gross.Sub(net)
		effective := deductions.Div(gross).Mul(hundred)
		// Of an extra £100 earned, whatever does not reach net income
		// is the marginal rate in percent.
		marginal := probe.Sub(netAbove.Sub(net))

		fmt.Printf("%14s %14s %14s %10s%% %10s%%\n",
			domain.FormatGBP(gross),
			domain.FormatGBP(net.Round(2)),
			domain.FormatGBP(deductions.Round(2)),
			effective.StringFixed(1),
			marginal.StringFixed(1))
	}
}

func netFor(gross decimal.Decimal, policy domain.TaxPolicy) decimal.Decimal {
	profile := domain.UserFinancialProfile{
		GrossSalary:     gross,
		StudentLoanPlan: domain.PlanNone,
	}
	result, err := calculation.ComputeWithPolicy(profile, policy)
	if err != nil {
		log.Fatal(err)
	}
	return result.NetIncome.Annual()
}
