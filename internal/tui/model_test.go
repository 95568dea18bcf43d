package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/ukpay/takehome/internal/domain"
)

func newTestModel() Model {
	profile := domain.UserFinancialProfile{
		GrossSalary:     decimal.NewFromInt(40000),
		StudentLoanPlan: domain.PlanNone,
	}
	return NewModel(profile, domain.UKPolicy2024())
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runePress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next
}

func TestNewModelComputesInitialResult(t *testing.T) {
	m := newTestModel()

	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	if m.result == nil {
		t.Fatal("expected an initial result")
	}
	net := m.result.NetIncome.Annual()
	if !net.Equal(decimal.RequireFromString("32320.08")) {
		t.Errorf("initial net income = %s, want 32320.08", net)
	}
}

func TestIncreaseSalaryRecalculates(t *testing.T) {
	m := newTestModel()
	before := m.result.NetIncome.Annual()

	m = step(t, m, keyPress(tea.KeyRight))

	gross := m.result.GrossSalary.Annual()
	if !gross.Equal(decimal.NewFromInt(40500)) {
		t.Errorf("gross after one step = %s, want 40500", gross)
	}
	if !m.result.NetIncome.Annual().GreaterThan(before) {
		t.Errorf("net income did not increase: %s", m.result.NetIncome.Annual())
	}
}

func TestPlanSelectorCycles(t *testing.T) {
	m := newTestModel()

	for i := 0; i < sliderCount; i++ {
		m = step(t, m, keyPress(tea.KeyDown))
	}
	if !m.planFocused() {
		t.Fatalf("focused = %d, want plan selector", m.focused)
	}

	// Another down must not walk off the end.
	m = step(t, m, keyPress(tea.KeyDown))
	if !m.planFocused() {
		t.Fatalf("focus moved past the plan selector")
	}

	m = step(t, m, keyPress(tea.KeyRight))
	plan := m.planNames[m.planIndex]
	if plan != domain.Plan2 {
		t.Fatalf("plan after cycle = %q, want %q", plan, domain.Plan2)
	}
	loan := m.result.StudentLoanRepayment.Annual()
	if !loan.Equal(decimal.RequireFromString("1143.45")) {
		t.Errorf("loan repayment on Plan 2 = %s, want 1143.45", loan)
	}
}

func TestResetRestoresStartingProfile(t *testing.T) {
	m := newTestModel()

	m = step(t, m, keyPress(tea.KeyRight))
	m = step(t, m, keyPress(tea.KeyDown))
	m = step(t, m, keyPress(tea.KeyRight))

	m = step(t, m, runePress('r'))

	if m.err != nil {
		t.Fatalf("unexpected error after reset: %v", m.err)
	}
	gross := m.result.GrossSalary.Annual()
	if !gross.Equal(decimal.NewFromInt(40000)) {
		t.Errorf("gross after reset = %s, want 40000", gross)
	}
	pension := m.result.PensionContribution.Annual()
	if !pension.IsZero() {
		t.Errorf("pension after reset = %s, want 0", pension)
	}
	if m.focused != 0 {
		t.Errorf("focused after reset = %d, want 0", m.focused)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(runePress('q'))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("command produced %T, want tea.QuitMsg", cmd())
	}
}

func TestViewShowsStatement(t *testing.T) {
	m := newTestModel()

	view := m.View()
	for _, want := range []string{
		"UK Take-Home Pay",
		"2024/25 tax year",
		"Gross Salary",
		"Student Loan Plan",
		"Net Income",
		"£32,320.08",
		"Take-Home Rate",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel()

	m = step(t, m, tea.WindowSizeMsg{Width: 140, Height: 50})
	if m.width != 140 || m.height != 50 {
		t.Errorf("size = %dx%d, want 140x50", m.width, m.height)
	}
}
