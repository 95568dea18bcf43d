package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and advances the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		m.moveFocus(-1)

	case key.Matches(msg, keys.Down):
		m.moveFocus(1)

	case key.Matches(msg, keys.Decrease):
		m.adjust(-1)

	case key.Matches(msg, keys.Increase):
		m.adjust(1)

	case key.Matches(msg, keys.Reset):
		m.reset()
	}

	return m, nil
}

// moveFocus shifts focus between the sliders and the plan selector.
func (m *Model) moveFocus(delta int) {
	next := m.focused + delta
	if next < 0 || next > sliderCount {
		return
	}
	m.focused = next
	m.syncFocus()
}

// adjust changes the focused control: sliders step, the plan selector
// cycles through the policy's plans.
func (m *Model) adjust(delta int) {
	if m.planFocused() {
		if len(m.planNames) == 0 {
			return
		}
		m.planIndex = (m.planIndex + delta + len(m.planNames)) % len(m.planNames)
	} else {
		if delta < 0 {
			m.sliders[m.focused].Decrement()
		} else {
			m.sliders[m.focused].Increment()
		}
	}
	m.recalculate()
}

// reset restores the starting profile's values.
func (m *Model) reset() {
	m.buildSliders()
	m.planIndex = m.planIndexFor(m.initial.PlanOrDefault())
	m.recalculate()
}
