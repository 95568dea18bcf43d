package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/ukpay/takehome/internal/domain"
	"github.com/ukpay/takehome/internal/tui/tuistyles"
)

const (
	resultLabelWidth  = 32
	resultAmountWidth = 13
)

// View renders the explorer: controls on the left, the live deduction
// statement on the right.
func (m Model) View() string {
	title := tuistyles.TitleStyle.Render("UK Take-Home Pay")
	subtitle := tuistyles.SubtitleStyle.Render(m.policy.TaxYear + " tax year")

	controls := tuistyles.BorderStyle.Render(m.renderControls())
	results := tuistyles.BorderStyle.Render(m.renderResults())
	body := lipgloss.JoinHorizontal(lipgloss.Top, controls, "  ", results)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		subtitle,
		body,
		m.renderStatusBar(),
	)
}

func (m Model) renderControls() string {
	var sections []string
	for _, slider := range m.sliders {
		sections = append(sections, slider.Render())
	}
	sections = append(sections, m.renderPlanSelector())
	return strings.Join(sections, "\n\n")
}

func (m Model) renderPlanSelector() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if m.planFocused() {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	name := domain.PlanNone
	if len(m.planNames) > 0 {
		name = m.planNames[m.planIndex]
	}

	return labelStyle.Render("Student Loan Plan") + "\n" +
		valueStyle.Render("‹ "+name+" ›")
}

func (m Model) renderResults() string {
	if m.err != nil {
		return tuistyles.ErrorStyle.Render("Error: " + m.err.Error())
	}
	if m.result == nil {
		return "No results yet."
	}

	headerStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	rows := []string{headerStyle.Render(resultRow("Item", "Annual", "Monthly"))}

	lines := m.result.Lines()
	for i, line := range lines {
		row := resultRow(line.Label,
			tuistyles.FormatCurrency(line.Amount.Annual()),
			tuistyles.FormatCurrency(line.Amount.Monthly()))
		style := tuistyles.MetricLabelStyle
		if i == len(lines)-1 {
			style = tuistyles.MetricValueStyle
		}
		rows = append(rows, style.Render(row))
	}

	gross := m.result.GrossSalary.Annual()
	if gross.IsPositive() {
		rate := m.result.NetIncome.Annual().Div(gross).Mul(decimal.NewFromInt(100))
		rows = append(rows, "", tuistyles.MetricPositiveStyle.Render(
			resultRow("Take-Home Rate", rate.StringFixed(1)+"%", "")))
	}

	return strings.Join(rows, "\n")
}

func resultRow(label, annual, monthly string) string {
	return fmt.Sprintf("%-*s %*s %*s",
		resultLabelWidth, label,
		resultAmountWidth, annual,
		resultAmountWidth, monthly)
}

func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("↑/↓", "field"),
		formatShortcut("←/→", "adjust"),
		formatShortcut("r", "reset"),
		formatShortcut("q", "quit"),
	}
	return tuistyles.StatusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " • "))
}

func formatShortcut(key, desc string) string {
	return tuistyles.StatusKeyStyle.Render(key) + " " + desc
}
