package compare

import (
	"fmt"

	"github.com/ukpay/takehome/internal/calculation"
	"github.com/ukpay/takehome/internal/domain"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	Policy  domain.TaxPolicy
	Metrics *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(policy domain.TaxPolicy) *CompareEngine {
	return &CompareEngine{
		Policy:  policy,
		Metrics: NewMetricsCalculator(),
	}
}

// Compare calculates the base profile alongside one alternative scenario
// per variant spec. Each alternative is named after its spec.
func (ce *CompareEngine) Compare(base domain.UserFinancialProfile, variantSpecs []string) (*ComparisonSet, error) {
	baseBreakdown, err := calculation.ComputeWithPolicy(base, ce.Policy)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base profile: %w", err)
	}

	baseResult := ce.Metrics.CalculateMetrics("Current", "The profile as given", baseBreakdown)

	alternatives := []ComparisonResult{}

	for _, spec := range variantSpecs {
		variant, err := ParseVariant(spec)
		if err != nil {
			return nil, err
		}

		if err := variant.Validate(base); err != nil {
			return nil, fmt.Errorf("variant %s validation failed: %w", variant.Name(), err)
		}

		modified, err := variant.Apply(base)
		if err != nil {
			return nil, fmt.Errorf("variant %s failed: %w", variant.Name(), err)
		}

		altBreakdown, err := calculation.ComputeWithPolicy(modified, ce.Policy)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", spec, err)
		}

		altResult := ce.Metrics.CalculateMetrics(spec, variant.Description(), altBreakdown)
		altResult = ce.Metrics.CalculateComparison(altResult, baseResult)

		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}

	compSet.Findings = GenerateFindings(compSet)

	return compSet, nil
}
