package domain

// Statement line labels, in the order they are reported.
const (
	LabelGrossSalary            = "Gross Salary"
	LabelPensionContribution    = "Pension Contribution"
	LabelSalarySacrifice        = "Salary Sacrifice"
	LabelPersonalAllowance      = "Personal Allowance"
	LabelTaxableIncome          = "Taxable Income"
	LabelTax                    = "Tax"
	LabelNIContributions        = "NI Contributions"
	LabelStudentLoan            = "Student Loan Repayment"
	LabelNetIncome              = "Net Income"
	LabelBills                  = "Bills"
	LabelSpendableIncome        = "Spendable Income"
	LabelExpenses               = "Expenses"
	LabelSpendableAfterExpenses = "Spendable Income After Expenses"
)

// CalculationResult is a complete take-home breakdown. Every figure is a
// PeriodAmount so callers can read it per year, per month, or per week.
type CalculationResult struct {
	GrossSalary            PeriodAmount
	PensionContribution    PeriodAmount
	SalarySacrifice        PeriodAmount
	PersonalAllowance      PeriodAmount
	TaxableIncome          PeriodAmount
	Tax                    PeriodAmount
	NIContributions        PeriodAmount
	StudentLoanRepayment   PeriodAmount
	NetIncome              PeriodAmount
	Bills                  PeriodAmount
	SpendableIncome        PeriodAmount
	Expenses               PeriodAmount
	SpendableAfterExpenses PeriodAmount
}

// Line pairs a statement label with its amount.
type Line struct {
	Label  string
	Amount PeriodAmount
}

// Lines returns the breakdown in statement order.
func (r *CalculationResult) Lines() []Line {
	return []Line{
		{LabelGrossSalary, r.GrossSalary},
		{LabelPensionContribution, r.PensionContribution},
		{LabelSalarySacrifice, r.SalarySacrifice},
		{LabelPersonalAllowance, r.PersonalAllowance},
		{LabelTaxableIncome, r.TaxableIncome},
		{LabelTax, r.Tax},
		{LabelNIContributions, r.NIContributions},
		{LabelStudentLoan, r.StudentLoanRepayment},
		{LabelNetIncome, r.NetIncome},
		{LabelBills, r.Bills},
		{LabelSpendableIncome, r.SpendableIncome},
		{LabelExpenses, r.Expenses},
		{LabelSpendableAfterExpenses, r.SpendableAfterExpenses},
	}
}
