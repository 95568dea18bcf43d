package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ukpay/takehome/internal/domain"
)

func TestTaperedAllowance(t *testing.T) {
	pa := domain.UKPolicy2024().PersonalAllowance

	tests := []struct {
		name     string
		gross    decimal.Decimal
		expected decimal.Decimal
	}{
		{
			name:     "below the taper threshold keeps the full allowance",
			gross:    decimal.NewFromInt(40000),
			expected: decimal.NewFromInt(12570),
		},
		{
			name:     "exactly at the threshold keeps the full allowance",
			gross:    decimal.NewFromInt(100000),
			expected: decimal.NewFromInt(12570),
		},
		{
			name:     "ten thousand over loses five thousand",
			gross:    decimal.NewFromInt(110000),
			expected: decimal.NewFromInt(7570),
		},
		{
			name:     "fully tapered at 125140",
			gross:    decimal.NewFromInt(125140),
			expected: decimal.Zero,
		},
		{
			name:     "never goes negative",
			gross:    decimal.NewFromInt(150000),
			expected: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowance := TaperedAllowance(pa, tt.gross)
			assert.True(t, tt.expected.Equal(allowance),
				"Expected allowance %s, got %s", tt.expected, allowance)
		})
	}
}

func TestIncomeTax(t *testing.T) {
	bands := domain.UKPolicy2024().TaxBands

	tests := []struct {
		name      string
		taxable   decimal.Decimal
		allowance decimal.Decimal
		expected  decimal.Decimal
	}{
		{
			name:      "zero taxable income",
			taxable:   decimal.Zero,
			allowance: decimal.NewFromInt(12570),
			expected:  decimal.Zero,
		},
		{
			name:      "basic rate only",
			taxable:   decimal.NewFromInt(27430),
			allowance: decimal.NewFromInt(12570),
			expected:  decimal.NewFromInt(5486),
		},
		{
			name:      "crosses into the higher band",
			taxable:   decimal.NewFromInt(47430),
			allowance: decimal.NewFromInt(12570),
			expected:  decimal.NewFromInt(11432),
		},
		{
			name:      "reaches the additional band with no allowance",
			taxable:   decimal.NewFromInt(150000),
			allowance: decimal.Zero,
			expected:  decimal.NewFromInt(51189),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax := IncomeTax(bands, tt.taxable, tt.allowance)
			assert.True(t, tt.expected.Equal(tax),
				"Expected tax %s, got %s", tt.expected, tax)
		})
	}
}

func TestNationalInsurance(t *testing.T) {
	ni := domain.UKPolicy2024().NI

	tests := []struct {
		name     string
		gross    decimal.Decimal
		expected decimal.Decimal
	}{
		{
			name:     "below the lower threshold",
			gross:    decimal.NewFromInt(12000),
			expected: decimal.Zero,
		},
		{
			name:     "exactly at the lower threshold pays nothing",
			gross:    decimal.NewFromInt(12576),
			expected: decimal.Zero,
		},
		{
			name:     "main rate band",
			gross:    decimal.NewFromInt(40000),
			expected: decimal.NewFromFloat(2193.92),
		},
		{
			name:     "exactly at the upper threshold",
			gross:    decimal.NewFromInt(50268),
			expected: decimal.NewFromFloat(3015.36),
		},
		{
			name:     "upper rate on the excess",
			gross:    decimal.NewFromInt(60000),
			expected: decimal.NewFromFloat(3210.00),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NationalInsurance(ni, tt.gross)
			assert.True(t, tt.expected.Equal(got),
				"Expected NI %s, got %s", tt.expected, got)
		})
	}
}

func TestStudentLoan(t *testing.T) {
	policy := domain.UKPolicy2024()
	plan2, err := policy.Plan(domain.Plan2)
	assert.NoError(t, err)
	noPlan, err := policy.Plan(domain.PlanNone)
	assert.NoError(t, err)

	tests := []struct {
		name     string
		plan     domain.StudentLoanPlan
		gross    decimal.Decimal
		expected decimal.Decimal
	}{
		{
			name:     "plan 2 above the threshold",
			plan:     plan2,
			gross:    decimal.NewFromInt(40000),
			expected: decimal.NewFromFloat(1143.45),
		},
		{
			name:     "plan 2 below the threshold clamps to zero",
			plan:     plan2,
			gross:    decimal.NewFromInt(20000),
			expected: decimal.Zero,
		},
		{
			name:     "no plan never repays",
			plan:     noPlan,
			gross:    decimal.NewFromInt(150000),
			expected: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StudentLoan(tt.plan, tt.gross)
			assert.True(t, tt.expected.Equal(got),
				"Expected repayment %s, got %s", tt.expected, got)
		})
	}
}
