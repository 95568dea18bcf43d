package output

import (
	"bytes"
	"encoding/csv"

	"github.com/ukpay/takehome/internal/domain"
)

// CSVFormatter emits one row per statement line with raw decimal values.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Item", "Annual", "Monthly", "Weekly"}); err != nil {
		return nil, err
	}
	for _, line := range result.Lines() {
		row := []string{
			line.Label,
			line.Amount.Annual().StringFixed(2),
			line.Amount.Monthly().StringFixed(2),
			line.Amount.Weekly().StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
