package output

import (
	json "github.com/goccy/go-json"

	"github.com/ukpay/takehome/internal/domain"
)

// JSONFormatter emits the statement and its flow diagram as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

func (j JSONFormatter) Name() string { return "json" }

type jsonLine struct {
	Item   string              `json:"item"`
	Amount domain.PeriodAmount `json:"amount"`
}

type jsonStatement struct {
	LineItems []jsonLine `json:"line_items"`
	Flow      Flow       `json:"flow"`
}

func (j JSONFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	statement := jsonStatement{Flow: BuildFlow(result)}
	for _, line := range result.Lines() {
		statement.LineItems = append(statement.LineItems, jsonLine{Item: line.Label, Amount: line.Amount})
	}
	if j.Pretty {
		return json.MarshalIndent(statement, "", "  ")
	}
	return json.Marshal(statement)
}
