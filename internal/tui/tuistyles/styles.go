// Package tuistyles holds the shared lipgloss styles for the terminal
// UI. Components and scenes both import it, keeping the palette in one
// place.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/ukpay/takehome/internal/domain"
)

// Palette. ANSI-256 codes so the UI degrades sanely on basic terminals.
var (
	ColorPrimary    = lipgloss.Color("99")
	ColorAccent     = lipgloss.Color("212")
	ColorSuccess    = lipgloss.Color("42")
	ColorDanger     = lipgloss.Color("196")
	ColorInfo       = lipgloss.Color("39")
	ColorForeground = lipgloss.Color("252")
	ColorMuted      = lipgloss.Color("241")
	ColorBorder     = lipgloss.Color("238")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInfo)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	MetricPositiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	ParameterLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	ParameterValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)

	SliderThumbStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)
)

// FormatCurrency renders a decimal as pounds and pence for display.
func FormatCurrency(v decimal.Decimal) string {
	return domain.FormatGBP(v.Round(2))
}
