package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ukpay/takehome/internal/domain"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("TAKE-HOME SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	if compSet.ProfilePath != "" {
		sb.WriteString(fmt.Sprintf("Profile: %s\n", compSet.ProfilePath))
	}
	sb.WriteString("\n")

	// Column widths
	nameWidth := 22
	numWidth := 14

	// Table header
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Gross Salary",
		numWidth, "Net Income",
		numWidth, "Spendable",
		numWidth, "Take-Home"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	// Base scenario row
	base := compSet.BaseResult
	sb.WriteString(tf.formatRow(base, nameWidth, numWidth, true))

	// Alternative scenarios
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Comparison details (deltas from base)
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s (%s):\n", alt.Name, alt.Description))

			// Net income difference
			netSymbol := tf.deltaSymbol(alt.NetDiffFromBase)
			sb.WriteString(fmt.Sprintf("  Net Income:       %s%s (%s%%)\n",
				netSymbol,
				domain.FormatGBP(alt.NetDiffFromBase.Abs()),
				alt.NetPctFromBase.StringFixed(1)))

			// Deduction difference
			deductionDiff := alt.Deductions().Sub(compSet.BaseResult.Deductions())
			if !deductionDiff.IsZero() {
				deductionSymbol := tf.deltaSymbol(deductionDiff.Neg()) // lower deductions are better
				sb.WriteString(fmt.Sprintf("  Deduction Impact: %s%s\n",
					deductionSymbol,
					domain.FormatGBP(deductionDiff.Abs())))
			}
		}
		sb.WriteString("\n")
	}

	// Findings
	if len(compSet.Findings) > 0 {
		sb.WriteString("\nFINDINGS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, finding := range compSet.Findings {
			sb.WriteString(fmt.Sprintf("• %s\n", finding))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.Name
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, domain.FormatGBP(result.GrossSalary),
		numWidth, domain.FormatGBP(result.NetIncome),
		numWidth, domain.FormatGBP(result.SpendableIncome),
		numWidth, result.TakeHomeRate.StringFixed(1)+"%")
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base net %s", domain.FormatGBP(compSet.BaseResult.NetIncome)))

	for _, alt := range compSet.AlternativeResults {
		sb.WriteString(" | ")

		netChange := "="
		if alt.NetDiffFromBase.IsPositive() {
			netChange = "+" + domain.FormatGBP(alt.NetDiffFromBase)
		} else if alt.NetDiffFromBase.IsNegative() {
			netChange = "-" + domain.FormatGBP(alt.NetDiffFromBase.Abs())
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.Name, netChange))
	}

	return sb.String()
}
