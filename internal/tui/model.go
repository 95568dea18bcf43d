// Package tui is an interactive take-home pay explorer. Salary, pension
// and salary sacrifice move on sliders; every change recalculates the
// full deduction pipeline and refreshes the results pane.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/ukpay/takehome/internal/calculation"
	"github.com/ukpay/takehome/internal/domain"
	"github.com/ukpay/takehome/internal/tui/components"
)

// Slider order. The plan selector sits after the last slider in the
// focus cycle.
const (
	sliderGross = iota
	sliderPension
	sliderSacrifice
	sliderCount
)

// Model holds the explorer state.
type Model struct {
	policy  domain.TaxPolicy
	initial domain.UserFinancialProfile

	sliders   []*components.ParameterSlider
	planNames []string
	planIndex int
	focused   int

	result *domain.CalculationResult
	err    error

	width  int
	height int
}

// NewModel builds the explorer around a starting profile. The profile's
// bills and expenses carry through unchanged; the sliders adjust the
// salary side only.
func NewModel(profile domain.UserFinancialProfile, policy domain.TaxPolicy) Model {
	m := Model{
		policy:    policy,
		initial:   profile,
		planNames: policy.PlanNames(),
		width:     100,
		height:    32,
	}
	m.planIndex = m.planIndexFor(profile.PlanOrDefault())
	m.buildSliders()
	m.recalculate()
	return m
}

// Init is required by the tea.Model interface. The starting profile is
// already loaded, so there is nothing to do.
func (m Model) Init() tea.Cmd {
	return nil
}

// buildSliders resets the sliders to the starting profile's values.
func (m *Model) buildSliders() {
	gross := components.NewParameterSlider("Gross Salary",
		m.initial.GrossSalary.InexactFloat64(), 0, 200000, 500).
		WithPrefix("£").
		WithFormat("%.0f").
		WithWidth(40).
		WithDescription("Annual salary before any deductions")

	pension := components.NewParameterSlider("Pension Contribution",
		m.initial.PensionPercent.InexactFloat64(), 0, 30, 0.5).
		WithUnit("%").
		WithFormat("%.1f").
		WithWidth(40).
		WithDescription("Workplace pension, percent of gross")

	sacrifice := components.NewParameterSlider("Salary Sacrifice",
		m.initial.SalarySacrificeMonthly.InexactFloat64(), 0, 2000, 25).
		WithPrefix("£").
		WithUnit("/month").
		WithFormat("%.0f").
		WithWidth(40).
		WithDescription("Monthly amount exchanged before tax")

	m.sliders = []*components.ParameterSlider{gross, pension, sacrifice}
	m.focused = 0
	m.syncFocus()
}

func (m *Model) planIndexFor(name string) int {
	for i, plan := range m.planNames {
		if plan == name {
			return i
		}
	}
	return 0
}

// currentProfile assembles a profile from the slider positions.
func (m *Model) currentProfile() domain.UserFinancialProfile {
	profile := m.initial
	profile.GrossSalary = decimal.NewFromFloat(m.sliders[sliderGross].Value)
	profile.PensionPercent = decimal.NewFromFloat(m.sliders[sliderPension].Value)
	profile.SalarySacrificeMonthly = decimal.NewFromFloat(m.sliders[sliderSacrifice].Value)
	if len(m.planNames) > 0 {
		profile.StudentLoanPlan = m.planNames[m.planIndex]
	}
	return profile
}

// recalculate runs the pipeline for the current slider positions. The
// calculation is pure arithmetic, so running it inline keeps the UI
// simpler than a command round-trip would.
func (m *Model) recalculate() {
	m.result, m.err = calculation.ComputeWithPolicy(m.currentProfile(), m.policy)
}

func (m *Model) syncFocus() {
	for i, slider := range m.sliders {
		slider.SetFocused(i == m.focused)
	}
}

// planFocused reports whether the plan selector has focus.
func (m Model) planFocused() bool {
	return m.focused == sliderCount
}
