package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/ukpay/takehome/internal/domain"
)

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// pdfText maps strings into the Latin-1 range the core fonts expect.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "£", "\xa3")
}

// PDFFormatter produces a printable A4 statement.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, 20, pdfMarginRight)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 22)
	pdf.CellFormat(pdfContentWidth, 12, "Take-Home Pay Statement", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(pdfContentWidth, 6, "Generated "+time.Now().Format("2 January 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	colItem := 75.0
	colAmount := (pdfContentWidth - colItem) / 3
	pdf.CellFormat(colItem, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colAmount, 8, "Annual", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colAmount, 8, "Monthly", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colAmount, 8, "Weekly", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range result.Lines() {
		breakdown := line.Amount.Format("£")
		pdf.CellFormat(colItem, 7, pdfText(line.Label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colAmount, 7, pdfText(breakdown.Annual), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colAmount, 7, pdfText(breakdown.Monthly), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colAmount, 7, pdfText(breakdown.Weekly), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pdfContentWidth, 8, "Where It Goes", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	flow := BuildFlow(result)
	for _, link := range flow.Links {
		text := fmt.Sprintf("%s to %s: %s a year",
			flow.Nodes[link.Source], flow.Nodes[link.Target], domain.FormatGBP(link.Value.Round(2)))
		pdf.CellFormat(pdfContentWidth, 6, pdfText(text), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
