package solver

import (
	"fmt"
	"strings"

	"github.com/ukpay/takehome/internal/domain"
)

// TableFormatter formats solver results for the console
type TableFormatter struct{}

// Format generates a formatted block for a required-salary result
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("REQUIRED SALARY ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Goal:                %s\n", result.Goal))
	sb.WriteString(fmt.Sprintf("Annual Target:       %s\n", domain.FormatGBP(result.Target)))
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Converged)))
	sb.WriteString(fmt.Sprintf("Iterations:          %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:         %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("REQUIRED SALARY\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Gross Salary:        %s\n", domain.FormatGBP(result.RequiredGrossSalary)))
	sb.WriteString(fmt.Sprintf("Achieved:            %s a year\n", domain.FormatGBP(result.Achieved)))
	sb.WriteString("\n")

	if result.Breakdown != nil {
		sb.WriteString("ANNUAL BREAKDOWN AT THAT SALARY\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, line := range result.Breakdown.Lines() {
			sb.WriteString(fmt.Sprintf("%-32s %14s\n", line.Label, line.Amount.Format("£").Annual))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (tf *TableFormatter) formatStatus(converged bool) string {
	if converged {
		return "✓ Converged"
	}
	return "✗ Not converged"
}
