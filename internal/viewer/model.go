// Package viewer is a terminal browser over rendered series: one chart per
// (horizon, employee) band pair, navigated with the arrow keys.
package viewer

import (
	tea "github.com/charmbracelet/bubbletea"

	"BankruptcySentiment/internal/domain"
)

// Entry is one rendered chart.
type Entry struct {
	Series domain.QuarterlySeries
	Path   string
}

// Model is the viewer state.
type Model struct {
	entries  map[domain.BandPair]Entry
	horizon  int
	employee int
	quitting bool
}

// NewModel indexes entries by band pair and starts at the first pair.
func NewModel(entries []Entry) Model {
	m := Model{entries: make(map[domain.BandPair]Entry, len(entries))}
	for _, e := range entries {
		m.entries[e.Series.Pair] = e
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Pair is the currently displayed band pair.
func (m Model) Pair() domain.BandPair {
	return domain.BandPair{
		Horizon:  domain.HorizonBands[m.horizon],
		Employee: domain.EmployeeBands[m.employee],
	}
}

// Current returns the entry of the displayed pair, if one was rendered.
func (m Model) Current() (Entry, bool) {
	e, ok := m.entries[m.Pair()]
	return e, ok
}

// Run starts the interactive program and blocks until the user quits.
func Run(entries []Entry) error {
	_, err := tea.NewProgram(NewModel(entries)).Run()
	return err
}
