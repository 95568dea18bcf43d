package solver

import (
	"github.com/shopspring/decimal"

	"github.com/ukpay/takehome/internal/domain"
)

// Goal selects which result line a required-salary search aims at.
type Goal string

const (
	GoalNetIncome     Goal = "net_income"
	GoalSpendable     Goal = "spendable_income"
	GoalAfterExpenses Goal = "after_expenses"
)

// Request describes one required-salary search. The target is annual.
type Request struct {
	Goal          Goal            `json:"goal"`
	Target        decimal.Decimal `json:"target"`
	Tolerance     decimal.Decimal `json:"tolerance,omitempty"`      // zero uses the solver default
	MaxIterations int             `json:"max_iterations,omitempty"` // zero uses the solver default
}

// Result is the outcome of a required-salary search.
type Result struct {
	Goal                Goal                      `json:"goal"`
	Target              decimal.Decimal           `json:"target"`
	RequiredGrossSalary decimal.Decimal           `json:"required_gross_salary"`
	Achieved            decimal.Decimal           `json:"achieved"`
	Iterations          int                       `json:"iterations"`
	Converged           bool                      `json:"converged"`
	ConvergenceInfo     string                    `json:"convergence_info,omitempty"`
	Breakdown           *domain.CalculationResult `json:"-"`
}

// SolverOptions configures the search algorithm.
type SolverOptions struct {
	Tolerance      decimal.Decimal // convergence tolerance on the goal line
	MaxIterations  int             // maximum bisection steps
	MaxGrossSalary decimal.Decimal // upper bound of the search interval
}

// DefaultSolverOptions returns the default search configuration.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:      decimal.NewFromFloat(0.50),
		MaxIterations:  100,
		MaxGrossSalary: decimal.NewFromInt(10000000),
	}
}

// SolverError describes a failed search.
type SolverError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SolverError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SolverError) Unwrap() error {
	return e.Cause
}
