package output

import (
	"github.com/shopspring/decimal"

	"github.com/ukpay/takehome/internal/domain"
)

// Flow node labels in index order. Link indices refer to these.
var flowNodes = []string{
	"Gross Salary",          // 0
	"Pension",               // 1
	"Salary Sacrifice",      // 2
	"Tax",                   // 3
	"NI",                    // 4
	"Student Loan",          // 5
	"Net Income",            // 6
	"Bills",                 // 7
	"Spendable Income",      // 8
	"Expenses",              // 9
	"Income After Expenses", // 10
}

// FlowLink is one edge of the income flow: Value moves from the node at
// index Source to the node at index Target.
type FlowLink struct {
	Source int             `json:"source"`
	Target int             `json:"target"`
	Value  decimal.Decimal `json:"value"`
}

// Flow lays the breakdown out as a flow diagram. Gross salary fans out
// into the deductions and net income, net income splits into bills and
// spendable income, and spendable income splits into expenses and what
// is left over.
type Flow struct {
	Nodes []string   `json:"nodes"`
	Links []FlowLink `json:"links"`
}

// BuildFlow maps the annual figures of a result onto the flow diagram.
func BuildFlow(result *domain.CalculationResult) Flow {
	links := []FlowLink{
		{Source: 0, Target: 1, Value: result.PensionContribution.Annual()},
		{Source: 0, Target: 2, Value: result.SalarySacrifice.Annual()},
		{Source: 0, Target: 3, Value: result.Tax.Annual()},
		{Source: 0, Target: 4, Value: result.NIContributions.Annual()},
		{Source: 0, Target: 5, Value: result.StudentLoanRepayment.Annual()},
		{Source: 0, Target: 6, Value: result.NetIncome.Annual()},
		{Source: 6, Target: 7, Value: result.Bills.Annual()},
		{Source: 6, Target: 8, Value: result.SpendableIncome.Annual()},
		{Source: 8, Target: 9, Value: result.Expenses.Annual()},
		{Source: 8, Target: 10, Value: result.SpendableAfterExpenses.Annual()},
	}
	return Flow{Nodes: append([]string(nil), flowNodes...), Links: links}
}
