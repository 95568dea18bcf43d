package solver

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ukpay/takehome/internal/calculation"
	"github.com/ukpay/takehome/internal/domain"
)

// Solver finds the gross salary that hits a take-home target. Every goal
// line rises with gross salary while the pension share stays under 100%,
// so a bisection over the salary interval is reliable.
type Solver struct {
	Policy  domain.TaxPolicy
	Options SolverOptions
}

// NewSolver creates a solver with custom options.
func NewSolver(policy domain.TaxPolicy, options SolverOptions) *Solver {
	return &Solver{Policy: policy, Options: options}
}

// NewDefaultSolver creates a solver with default options.
func NewDefaultSolver(policy domain.TaxPolicy) *Solver {
	return NewSolver(policy, DefaultSolverOptions())
}

// RequiredGross searches for the gross salary at which the profile hits
// the requested annual target. The profile's own gross salary is ignored.
func (s *Solver) RequiredGross(profile domain.UserFinancialProfile, req Request) (*Result, error) {
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}

	lo := decimal.Zero
	hi := s.Options.MaxGrossSalary

	floor, _, err := s.evaluate(profile, lo, req.Goal)
	if err != nil {
		return nil, err
	}
	if floor.GreaterThanOrEqual(req.Target) {
		result, err := s.resultAt(profile, lo, req, 0)
		if err != nil {
			return nil, err
		}
		result.Converged = true
		result.ConvergenceInfo = "target is already met with no salary"
		return result, nil
	}

	ceiling, _, err := s.evaluate(profile, hi, req.Goal)
	if err != nil {
		return nil, err
	}
	if ceiling.LessThan(req.Target) {
		return nil, &SolverError{
			Operation: "required_gross",
			Message: fmt.Sprintf("target %s for %s is not reachable below a gross salary of %s",
				req.Target.StringFixed(2), req.Goal, s.Options.MaxGrossSalary.StringFixed(0)),
		}
	}

	two := decimal.NewFromInt(2)
	penny := decimal.NewFromFloat(0.01)
	iterations := 0
	for iterations < req.MaxIterations {
		iterations++

		mid := lo.Add(hi).Div(two)
		achieved, breakdown, err := s.evaluate(profile, mid, req.Goal)
		if err != nil {
			return nil, err
		}

		if achieved.Sub(req.Target).Abs().LessThanOrEqual(req.Tolerance) {
			return &Result{
				Goal:                req.Goal,
				Target:              req.Target,
				RequiredGrossSalary: mid.Round(2),
				Achieved:            achieved,
				Iterations:          iterations,
				Converged:           true,
				ConvergenceInfo:     fmt.Sprintf("converged within £%s of the target", req.Tolerance.StringFixed(2)),
				Breakdown:           breakdown,
			}, nil
		}

		if achieved.LessThan(req.Target) {
			lo = mid
		} else {
			hi = mid
		}
		if hi.Sub(lo).LessThan(penny) {
			break
		}
	}

	result, err := s.resultAt(profile, hi, req, iterations)
	if err != nil {
		return nil, err
	}
	result.ConvergenceInfo = fmt.Sprintf("stopped after %d iterations without reaching the tolerance", iterations)
	return result, nil
}

func (s *Solver) resultAt(profile domain.UserFinancialProfile, gross decimal.Decimal, req Request, iterations int) (*Result, error) {
	achieved, breakdown, err := s.evaluate(profile, gross, req.Goal)
	if err != nil {
		return nil, err
	}
	return &Result{
		Goal:                req.Goal,
		Target:              req.Target,
		RequiredGrossSalary: gross.Round(2),
		Achieved:            achieved,
		Iterations:          iterations,
		Breakdown:           breakdown,
	}, nil
}

func (s *Solver) evaluate(profile domain.UserFinancialProfile, gross decimal.Decimal, goal Goal) (decimal.Decimal, *domain.CalculationResult, error) {
	probe := profile
	probe.GrossSalary = gross

	result, err := calculation.ComputeWithPolicy(probe, s.Policy)
	if err != nil {
		return decimal.Zero, nil, &SolverError{
			Operation: "evaluate",
			Message:   fmt.Sprintf("calculation failed at gross salary %s", gross.StringFixed(2)),
			Cause:     err,
		}
	}

	switch goal {
	case GoalNetIncome:
		return result.NetIncome.Annual(), result, nil
	case GoalSpendable:
		return result.SpendableIncome.Annual(), result, nil
	case GoalAfterExpenses:
		return result.SpendableAfterExpenses.Annual(), result, nil
	default:
		return decimal.Zero, nil, &SolverError{
			Operation: "evaluate",
			Message:   fmt.Sprintf("unknown goal %q", goal),
		}
	}
}
