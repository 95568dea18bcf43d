package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ukpay/takehome/internal/tui/tuistyles"
)

// ParameterSlider displays an adjustable parameter with a visual slider.
type ParameterSlider struct {
	Label       string
	Value       float64
	Min         float64
	Max         float64
	Step        float64
	Prefix      string // e.g. "£"
	Unit        string // e.g. "%", "/month"
	Format      string // e.g. "%.2f", "%.0f"
	Width       int    // total width of the slider bar
	IsFocused   bool
	Description string
}

// NewParameterSlider creates a new parameter slider.
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	return &ParameterSlider{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.2f",
		Width:  30,
	}
}

// WithPrefix sets a prefix shown before the value, such as a currency sign.
func (p *ParameterSlider) WithPrefix(prefix string) *ParameterSlider {
	p.Prefix = prefix
	return p
}

// WithUnit sets the unit suffix.
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string.
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// WithWidth sets the slider width.
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// WithDescription adds a line of help text under the slider.
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// SetFocused sets the focus state.
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// Increment increases the value by one step, stopping at Max.
func (p *ParameterSlider) Increment() {
	newValue := p.Value + p.Step
	if newValue <= p.Max {
		p.Value = newValue
	}
}

// Decrement decreases the value by one step, stopping at Min.
func (p *ParameterSlider) Decrement() {
	newValue := p.Value - p.Step
	if newValue >= p.Min {
		p.Value = newValue
	}
}

// SetValue sets the value directly, clamping to the slider's range.
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Percentage returns the value's position within the range, 0 to 1.
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// Render returns the styled parameter slider.
func (p *ParameterSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
	}
	content.WriteString(labelStyle.Render(p.Label))
	content.WriteString("\n")

	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	content.WriteString(valueStyle.Render(p.formatValue(p.Value)))
	content.WriteString("\n")

	content.WriteString(p.renderSliderBar())

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	rangeText := fmt.Sprintf("%s  to  %s", p.formatValue(p.Min), p.formatValue(p.Max))
	content.WriteString("\n")
	content.WriteString(rangeStyle.Render(rangeText))

	if p.Description != "" {
		content.WriteString("\n")
		descStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true)
		content.WriteString(descStyle.Render(p.Description))
	}

	return content.String()
}

func (p *ParameterSlider) formatValue(v float64) string {
	return p.Prefix + fmt.Sprintf(p.Format, v) + p.Unit
}

// renderSliderBar creates the visual slider bar.
func (p *ParameterSlider) renderSliderBar() string {
	percentage := p.Percentage()
	filled := int(math.Round(float64(p.Width) * percentage))
	empty := p.Width - filled

	if filled < 0 {
		filled = 0
	}
	if filled > p.Width {
		filled = p.Width
	}
	if empty < 0 {
		empty = 0
	}

	trackStyle := tuistyles.SliderTrackStyle
	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")

	if filled > 1 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(thumbStyle.Render("●"))

	if empty > 1 {
		bar.WriteString(trackStyle.Render(strings.Repeat("─", empty-1)))
	}

	bar.WriteString("]")
	return bar.String()
}
