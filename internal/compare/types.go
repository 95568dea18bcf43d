package compare

import (
	"github.com/shopspring/decimal"

	"github.com/ukpay/takehome/internal/domain"
)

// ComparisonResult represents a single scenario with its calculated metrics.
// Money figures are annual.
type ComparisonResult struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Breakdown   *domain.CalculationResult `json:"-"`

	// Key Metrics
	GrossSalary     decimal.Decimal `json:"grossSalary"`
	Tax             decimal.Decimal `json:"tax"`
	NIContributions decimal.Decimal `json:"niContributions"`
	StudentLoan     decimal.Decimal `json:"studentLoan"`
	NetIncome       decimal.Decimal `json:"netIncome"`
	SpendableIncome decimal.Decimal `json:"spendableIncome"`
	TakeHomeRate    decimal.Decimal `json:"takeHomeRate"` // net as a percentage of gross

	// Comparison to Base
	NetDiffFromBase decimal.Decimal `json:"netDiffFromBase"`
	NetPctFromBase  decimal.Decimal `json:"netPctFromBase"`
}

// Deductions returns the combined annual tax, NI, and student loan figure.
func (r *ComparisonResult) Deductions() decimal.Decimal {
	return r.Tax.Add(r.NIContributions).Add(r.StudentLoan)
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Findings           []string           `json:"findings"`
	ProfilePath        string             `json:"profilePath"`
}

// MetricsCalculator extracts key metrics from calculation results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for one scenario
func (mc *MetricsCalculator) CalculateMetrics(name, description string, breakdown *domain.CalculationResult) ComparisonResult {
	result := ComparisonResult{
		Name:            name,
		Description:     description,
		Breakdown:       breakdown,
		GrossSalary:     breakdown.GrossSalary.Annual(),
		Tax:             breakdown.Tax.Annual(),
		NIContributions: breakdown.NIContributions.Annual(),
		StudentLoan:     breakdown.StudentLoanRepayment.Annual(),
		NetIncome:       breakdown.NetIncome.Annual(),
		SpendableIncome: breakdown.SpendableIncome.Annual(),
	}

	if !result.GrossSalary.IsZero() {
		result.TakeHomeRate = result.NetIncome.
			Div(result.GrossSalary).
			Mul(decimal.NewFromInt(100))
	}

	return result
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.NetDiffFromBase = scenario.NetIncome.Sub(base.NetIncome)

	if !base.NetIncome.IsZero() {
		scenario.NetPctFromBase = scenario.NetDiffFromBase.
			Div(base.NetIncome).
			Mul(decimal.NewFromInt(100))
	}

	return scenario
}

// GenerateFindings creates observations based on comparison results
func GenerateFindings(compSet *ComparisonSet) []string {
	findings := []string{}

	if len(compSet.AlternativeResults) == 0 {
		return findings
	}

	// Find the scenario with the highest net income
	bestNet := compSet.BaseResult
	for _, alt := range compSet.AlternativeResults {
		alt := alt // per-iteration copy; &alt must not alias the shared loop variable on Go 1.21
		if alt.NetIncome.GreaterThan(bestNet.NetIncome) {
			bestNet = &alt
		}
	}

	if bestNet != compSet.BaseResult {
		netGain := bestNet.NetIncome.Sub(compSet.BaseResult.NetIncome)
		findings = append(findings,
			"Highest Net Income: "+bestNet.Name+" adds "+domain.FormatGBP(netGain)+
				" a year over the base profile")
	}

	// Find the scenario keeping the largest share of gross
	bestRate := compSet.BaseResult
	for _, alt := range compSet.AlternativeResults {
		alt := alt // per-iteration copy; &alt must not alias the shared loop variable on Go 1.21
		if alt.TakeHomeRate.GreaterThan(bestRate.TakeHomeRate) {
			bestRate = &alt
		}
	}

	if bestRate != compSet.BaseResult {
		findings = append(findings,
			"Best Take-Home Rate: "+bestRate.Name+" keeps "+bestRate.TakeHomeRate.StringFixed(1)+
				"% of gross pay")
	}

	// Find the lightest deduction burden
	lowestDeductions := compSet.BaseResult
	for _, alt := range compSet.AlternativeResults {
		alt := alt // per-iteration copy; &alt must not alias the shared loop variable on Go 1.21
		if alt.Deductions().LessThan(lowestDeductions.Deductions()) {
			lowestDeductions = &alt
		}
	}

	if lowestDeductions != compSet.BaseResult {
		saving := compSet.BaseResult.Deductions().Sub(lowestDeductions.Deductions())
		findings = append(findings,
			"Lowest Deductions: "+lowestDeductions.Name+" saves "+domain.FormatGBP(saving)+
				" in combined deductions")
	}

	return findings
}
