package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	// Write header
	header := []string{
		"Scenario",
		"Type",
		"Description",
		"Gross Salary",
		"Tax",
		"NI Contributions",
		"Student Loan",
		"Net Income",
		"Spendable Income",
		"Take-Home Rate %",
		"Net Diff from Base",
		"Net % Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	// Write base scenario
	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	// Write alternative scenarios
	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.Name,
		scenarioType,
		result.Description,
		result.GrossSalary.StringFixed(2),
		result.Tax.StringFixed(2),
		result.NIContributions.StringFixed(2),
		result.StudentLoan.StringFixed(2),
		result.NetIncome.StringFixed(2),
		result.SpendableIncome.StringFixed(2),
		result.TakeHomeRate.StringFixed(2),
		result.NetDiffFromBase.StringFixed(2),
		result.NetPctFromBase.StringFixed(2),
	}
}
