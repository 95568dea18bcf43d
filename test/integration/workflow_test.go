package integration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukpay/takehome/internal/calculation"
	"github.com/ukpay/takehome/internal/compare"
	"github.com/ukpay/takehome/internal/config"
	"github.com/ukpay/takehome/internal/domain"
	"github.com/ukpay/takehome/internal/solver"
)

// TestRequiredSalaryRoundTrip feeds the statement numbers back into the
// solver and expects it to find the salary they came from.
func TestRequiredSalaryRoundTrip(t *testing.T) {
	profile := loadExampleProfile(t)
	s := solver.NewDefaultSolver(domain.UKPolicy2024())

	t.Run("net_income_goal", func(t *testing.T) {
		result, err := s.RequiredGross(profile, solver.Request{
			Goal:   solver.GoalNetIncome,
			Target: money("28616.63"),
		})
		require.NoError(t, err)
		assert.True(t, result.Converged, "search should converge: %s", result.ConvergenceInfo)
		assert.InDelta(t, 40000, result.RequiredGrossSalary.InexactFloat64(), 1.0,
			"the profile nets that target on £40,000")
		assert.True(t, result.Achieved.Sub(result.Target).Abs().LessThanOrEqual(money("0.50")),
			"achieved %s should sit within tolerance of %s", result.Achieved, result.Target)
		require.NotNil(t, result.Breakdown)
		assert.True(t, result.Breakdown.NetIncome.Annual().Equal(result.Achieved))
	})

	t.Run("after_expenses_goal", func(t *testing.T) {
		result, err := s.RequiredGross(profile, solver.Request{
			Goal:   solver.GoalAfterExpenses,
			Target: money("11584.48"),
		})
		require.NoError(t, err)
		assert.True(t, result.Converged, "search should converge: %s", result.ConvergenceInfo)
		assert.InDelta(t, 40000, result.RequiredGrossSalary.InexactFloat64(), 1.0)
	})

	t.Run("unreachable_target", func(t *testing.T) {
		_, err := s.RequiredGross(profile, solver.Request{
			Goal:   solver.GoalNetIncome,
			Target: money("99000000"),
		})
		require.Error(t, err)
		var solverErr *solver.SolverError
		require.ErrorAs(t, err, &solverErr)
		assert.Contains(t, err.Error(), "not reachable")
	})
}

// TestCompareRoundTrip runs the what-if engine over the example profile
// with hand-checked alternatives.
func TestCompareRoundTrip(t *testing.T) {
	profile := loadExampleProfile(t)
	engine := compare.NewCompareEngine(domain.UKPolicy2024())

	specs := compare.ParseSpecList("pension=0, salary+10000")
	require.Len(t, specs, 2)

	compSet, err := engine.Compare(profile, specs)
	require.NoError(t, err, "comparison should succeed")
	require.NotNil(t, compSet.BaseResult)

	assert.Equal(t, "Current", compSet.BaseResult.Name)
	assert.True(t, compSet.BaseResult.NetIncome.Equal(money("28616.63")),
		"base net = %s", compSet.BaseResult.NetIncome)

	require.Len(t, compSet.AlternativeResults, 2)

	noPension := compSet.AlternativeResults[0]
	assert.Equal(t, "pension=0", noPension.Name)
	assert.True(t, noPension.NetIncome.Equal(money("30216.63")),
		"net without pension = %s", noPension.NetIncome)
	assert.True(t, noPension.NetDiffFromBase.Equal(money("1600")),
		"dropping a 5 percent contribution on £40,000 keeps 80 percent of it")

	raise := compSet.AlternativeResults[1]
	assert.Equal(t, "salary+10000", raise.Name)
	assert.True(t, raise.NetIncome.Equal(money("34516.63")),
		"net after the raise = %s", raise.NetIncome)
	assert.True(t, raise.NetDiffFromBase.Equal(money("5900")),
		"a £10,000 raise keeps 59 percent after deductions and the pension share")

	assert.NotEmpty(t, compSet.Findings, "two better scenarios should produce findings")

	t.Run("table_formatter", func(t *testing.T) {
		table := (&compare.TableFormatter{}).Format(compSet)
		for _, want := range []string{"Scenario", "Current", "pension=0", "salary+10000"} {
			assert.Contains(t, table, want)
		}
	})

	t.Run("csv_formatter", func(t *testing.T) {
		text, err := (&compare.CSVFormatter{}).Format(compSet)
		require.NoError(t, err)
		rows := strings.Split(strings.TrimSpace(text), "\n")
		require.Len(t, rows, 4, "header, base, two alternatives")
		assert.True(t, strings.HasPrefix(rows[0], "Scenario"), "header row = %q", rows[0])
	})
}

// TestInputErrors checks the failure paths a user hits with bad files
// and bad values.
func TestInputErrors(t *testing.T) {
	parser := config.NewInputParser()

	t.Run("missing_profile_file", func(t *testing.T) {
		_, err := parser.LoadProfile("../testdata/no_such_profile.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("malformed_profile_yaml", func(t *testing.T) {
		_, err := parser.ParseProfile([]byte("gross_salary: [oops"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse YAML")
	})

	t.Run("negative_salary_rejected", func(t *testing.T) {
		_, err := parser.ParseProfile([]byte("gross_salary: -1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "profile validation failed")
		assert.ErrorIs(t, err, domain.ErrInvalidProfile)
	})

	t.Run("unknown_plan_surfaces_at_calculation", func(t *testing.T) {
		profile := loadExampleProfile(t)
		profile.StudentLoanPlan = "Plan 9"

		_, err := calculation.Compute(profile)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownPlan)
		assert.Contains(t, err.Error(), "Plan 9")
	})

	t.Run("invalid_policy_rejected", func(t *testing.T) {
		bad := []byte(`
tax_year: "2024/25"
personal_allowance:
  amount: -12570
  taper_threshold: 100000
tax_bands:
  - name: "Basic rate"
    rate: 0.20
ni:
  lower_monthly: 1048
  upper_monthly: 4189
  main_rate: 0.08
  upper_rate: 0.02
student_loan_plans:
  - name: "No Plan"
    rate: 0
`)
		_, err := parser.ParsePolicy(bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "policy validation failed")
		assert.Contains(t, err.Error(), "personal allowance cannot be negative")
	})
}
