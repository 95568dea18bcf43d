package output

import (
	"fmt"
	"os"
	"time"

	"github.com/ukpay/takehome/internal/domain"
)

// Formatter renders a calculation result into one output format.
type Formatter interface {
	Name() string
	Format(result *domain.CalculationResult) ([]byte, error)
}

// FormatterFunc adapts a bare function into a Formatter.
type FormatterFunc struct {
	ID string
	F  func(result *domain.CalculationResult) ([]byte, error)
}

// Name returns the formatter's identifier.
func (ff FormatterFunc) Name() string { return ff.ID }

// Format invokes the wrapped function.
func (ff FormatterFunc) Format(result *domain.CalculationResult) ([]byte, error) {
	return ff.F(result)
}

// GetFormatterByName returns the formatter registered under name, or nil
// when there is none.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console":
		return ConsoleFormatter{}
	case "json":
		return JSONFormatter{Pretty: true}
	case "csv":
		return CSVFormatter{}
	case "html":
		return HTMLFormatter{}
	case "pdf":
		return PDFFormatter{}
	default:
		return nil
	}
}

// FormatNames lists the registered formatter names.
func FormatNames() []string {
	return []string{"console", "json", "csv", "html", "pdf"}
}

// WriteFormatted runs the formatter and writes its output to a timestamped
// file with the given extension, returning the filename.
func WriteFormatted(formatter Formatter, result *domain.CalculationResult, ext string) (string, error) {
	data, err := formatter.Format(result)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("takehome_statement_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}

// extensions maps formatter names to file extensions for GenerateReport.
var extensions = map[string]string{
	"console": "txt",
	"json":    "json",
	"csv":     "csv",
	"html":    "html",
	"pdf":     "pdf",
}

// GenerateReport renders the result in the given format. The console
// format prints to stdout; every other format is written to a timestamped
// file in the working directory.
func GenerateReport(result *domain.CalculationResult, format string) error {
	formatter := GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unsupported format: %s", format)
	}

	if format == "console" {
		data, err := formatter.Format(result)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	filename, err := WriteFormatted(formatter, result, extensions[format])
	if err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", filename)
	return nil
}
