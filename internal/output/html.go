package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ukpay/takehome/internal/domain"
)

// HTMLFormatter produces a standalone HTML statement.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": domain.FormatGBP,
}).Parse(htmlTemplateSource))

type htmlLine struct {
	Label     string
	Breakdown domain.PeriodBreakdown
}

type htmlFlowRow struct {
	From  string
	To    string
	Value decimal.Decimal
}

func (h HTMLFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	flow := BuildFlow(result)
	flowRows := make([]htmlFlowRow, 0, len(flow.Links))
	for _, link := range flow.Links {
		flowRows = append(flowRows, htmlFlowRow{
			From:  flow.Nodes[link.Source],
			To:    flow.Nodes[link.Target],
			Value: link.Value.Round(2),
		})
	}

	lines := result.Lines()
	htmlLines := make([]htmlLine, 0, len(lines))
	for _, line := range lines {
		htmlLines = append(htmlLines, htmlLine{Label: line.Label, Breakdown: line.Amount.Format("£")})
	}

	data := struct {
		GeneratedAt string
		Lines       []htmlLine
		FlowRows    []htmlFlowRow
	}{
		GeneratedAt: time.Now().Format("2 January 2006 15:04"),
		Lines:       htmlLines,
		FlowRows:    flowRows,
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
