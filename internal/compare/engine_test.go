package compare

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ukpay/takehome/internal/domain"
)

func TestCompareAgainstBase(t *testing.T) {
	engine := NewCompareEngine(domain.UKPolicy2024())

	base := domain.UserFinancialProfile{
		GrossSalary:     decimal.NewFromInt(40000),
		StudentLoanPlan: domain.PlanNone,
	}

	compSet, err := engine.Compare(base, []string{"salary+10000", "pension=5"})
	assert.NoError(t, err)
	assert.NotNil(t, compSet.BaseResult)
	assert.Len(t, compSet.AlternativeResults, 2)

	assert.Equal(t, "Current", compSet.BaseResult.Name)
	assert.True(t, compSet.BaseResult.NetIncome.Equal(decimal.NewFromFloat(32320.08)),
		"base net income: %s", compSet.BaseResult.NetIncome)

	raise := compSet.AlternativeResults[0]
	assert.Equal(t, "salary+10000", raise.Name)
	assert.Equal(t, "Increase gross salary by £10,000.00", raise.Description)
	assert.True(t, raise.GrossSalary.Equal(decimal.NewFromInt(50000)), "raise gross: %s", raise.GrossSalary)
	assert.True(t, raise.NetIncome.Equal(decimal.NewFromFloat(39520.08)), "raise net: %s", raise.NetIncome)
	assert.True(t, raise.NetDiffFromBase.Equal(decimal.NewFromInt(7200)), "raise diff: %s", raise.NetDiffFromBase)
	assert.Equal(t, "79.04", raise.TakeHomeRate.StringFixed(2))

	pension := compSet.AlternativeResults[1]
	assert.Equal(t, "pension=5", pension.Name)
	assert.True(t, pension.NetIncome.Equal(decimal.NewFromFloat(30720.08)), "pension net: %s", pension.NetIncome)
	assert.True(t, pension.NetDiffFromBase.Equal(decimal.NewFromInt(-1600)), "pension diff: %s", pension.NetDiffFromBase)
}

func TestCompareGeneratesFindings(t *testing.T) {
	engine := NewCompareEngine(domain.UKPolicy2024())

	base := domain.UserFinancialProfile{
		GrossSalary:     decimal.NewFromInt(40000),
		StudentLoanPlan: domain.PlanNone,
	}

	compSet, err := engine.Compare(base, []string{"salary+10000", "pension=5"})
	assert.NoError(t, err)
	assert.NotEmpty(t, compSet.Findings)

	joined := strings.Join(compSet.Findings, "\n")
	assert.Contains(t, joined, "Highest Net Income: salary+10000")
	assert.Contains(t, joined, "£7,200.00")
	assert.Contains(t, joined, "Lowest Deductions: pension=5")
	assert.Contains(t, joined, "£400.00")
}

func TestCompareKeepsBreakdowns(t *testing.T) {
	engine := NewCompareEngine(domain.UKPolicy2024())

	base := domain.UserFinancialProfile{GrossSalary: decimal.NewFromInt(40000)}

	compSet, err := engine.Compare(base, []string{"sacrifice=100"})
	assert.NoError(t, err)

	assert.NotNil(t, compSet.BaseResult.Breakdown)
	assert.NotNil(t, compSet.AlternativeResults[0].Breakdown)
	assert.True(t, compSet.AlternativeResults[0].Breakdown.SalarySacrifice.Annual().
		Equal(decimal.NewFromInt(1200)))
}

func TestCompareWithNoVariants(t *testing.T) {
	engine := NewCompareEngine(domain.UKPolicy2024())

	base := domain.UserFinancialProfile{GrossSalary: decimal.NewFromInt(40000)}

	compSet, err := engine.Compare(base, nil)
	assert.NoError(t, err)
	assert.NotNil(t, compSet.BaseResult)
	assert.Empty(t, compSet.AlternativeResults)
	assert.Empty(t, compSet.Findings)
}

func TestCompareRejectsBadSpec(t *testing.T) {
	engine := NewCompareEngine(domain.UKPolicy2024())

	base := domain.UserFinancialProfile{GrossSalary: decimal.NewFromInt(40000)}

	_, err := engine.Compare(base, []string{"holiday=2"})
	assert.Error(t, err)

	var variantErr *VariantError
	assert.ErrorAs(t, err, &variantErr)
}

func TestCompareRejectsInvalidVariant(t *testing.T) {
	engine := NewCompareEngine(domain.UKPolicy2024())

	base := domain.UserFinancialProfile{GrossSalary: decimal.NewFromInt(40000)}

	_, err := engine.Compare(base, []string{"salary-90000"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCompareSurfacesUnknownPlan(t *testing.T) {
	engine := NewCompareEngine(domain.UKPolicy2024())

	base := domain.UserFinancialProfile{GrossSalary: decimal.NewFromInt(40000)}

	_, err := engine.Compare(base, []string{"plan=Plan 9"})
	assert.ErrorIs(t, err, domain.ErrUnknownPlan)
}
