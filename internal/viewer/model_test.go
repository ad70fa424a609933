package viewer

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"BankruptcySentiment/internal/domain"
)

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

var (
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestHorizonNavigationWraps(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)
	if got := press(t, m, left).Pair().Horizon; got != domain.Horizon12MonthsPlus {
		t.Fatalf("left from first should wrap to last, got %v", got)
	}
	m = press(t, m, right, right, right, right, right)
	if got := m.Pair().Horizon; got != domain.HorizonUnder1Month {
		t.Fatalf("five rights should wrap to the first band, got %v", got)
	}
	if got := press(t, m, runeKey('n'), runeKey('l')).Pair().Horizon; got != domain.Horizon3To6Months {
		t.Fatalf("n/l should advance, got %v", got)
	}
	if got := press(t, m, runeKey('p')).Pair().Horizon; got != domain.Horizon12MonthsPlus {
		t.Fatalf("p should go back, got %v", got)
	}
}

func TestEmployeeNavigationWraps(t *testing.T) {
	t.Parallel()

	m := press(t, NewModel(nil), up)
	if got := m.Pair().Employee; got != domain.Employees100Plus {
		t.Fatalf("up from first should wrap to last, got %v", got)
	}
	if got := press(t, m, down).Pair().Employee; got != domain.Employees1To4 {
		t.Fatalf("down from last should wrap to first, got %v", got)
	}
}

func TestQuit(t *testing.T) {
	t.Parallel()

	next, cmd := NewModel(nil).Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Fatal("view should be empty after quitting")
	}
}

func TestViewShowsCurrentEntry(t *testing.T) {
	t.Parallel()

	pair := domain.BandPair{Horizon: domain.Horizon1To3Months, Employee: domain.Employees1To4}
	entry := Entry{
		Path: "out/graph1_0.svg",
		Series: domain.QuarterlySeries{
			Pair: pair,
			Points: []domain.SeriesPoint{
				{Snapshot: domain.Date(2020, 7, 14), Positive: 1, Total: 4, PositiveRatio: 0.25, BankruptcyPercentage: 12.5, HasBankruptcyData: true},
			},
		},
	}
	m := NewModel([]Entry{entry})

	if view := m.View(); !strings.Contains(view, "No chart rendered") {
		t.Fatalf("first pair has no entry, view:\n%s", view)
	}

	view := press(t, m, right).View()
	for _, want := range []string{"out/graph1_0.svg", "2020-07-14", "25.0% positive (1/4)", "12.5% expecting bankruptcy", "1 month to less than 3 months"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestBarScale(t *testing.T) {
	t.Parallel()

	if got := strings.Count(bar(50), "█"); got != barWidth/2 {
		t.Fatalf("50%% should fill half the bar, got %d", got)
	}
	if got := strings.Count(bar(150), "█"); got != barWidth {
		t.Fatalf("bar should clamp at full width, got %d", got)
	}
	if got := strings.Count(bar(-5), "█"); got != 0 {
		t.Fatalf("bar should clamp at zero, got %d", got)
	}
}
