package output

import (
	"fmt"
	"strings"

	"github.com/ukpay/takehome/internal/domain"
)

// ConsoleFormatter renders the statement as a fixed-width text table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var b strings.Builder

	rule := strings.Repeat("=", 78)
	b.WriteString(rule + "\n")
	b.WriteString("TAKE-HOME PAY BREAKDOWN\n")
	b.WriteString(rule + "\n\n")

	b.WriteString(fmt.Sprintf("%-32s %14s %14s %14s\n", "Item", "Annual", "Monthly", "Weekly"))
	b.WriteString(strings.Repeat("-", 78) + "\n")
	for _, line := range result.Lines() {
		breakdown := line.Amount.Format("£")
		b.WriteString(fmt.Sprintf("%-32s %14s %14s %14s\n",
			line.Label, breakdown.Annual, breakdown.Monthly, breakdown.Weekly))
	}
	b.WriteString("\n")

	b.WriteString("WHERE IT GOES\n")
	b.WriteString(strings.Repeat("-", 78) + "\n")
	flow := BuildFlow(result)
	for _, link := range flow.Links {
		b.WriteString(fmt.Sprintf("%-22s -> %-22s %14s\n",
			flow.Nodes[link.Source], flow.Nodes[link.Target],
			domain.FormatGBP(link.Value.Round(2))+"/yr"))
	}

	return []byte(b.String()), nil
}
