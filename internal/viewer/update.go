package viewer

import (
	tea "github.com/charmbracelet/bubbletea"

	"BankruptcySentiment/internal/domain"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "right", "l", "n":
		m.horizon = wrap(m.horizon+1, len(domain.HorizonBands))
	case "left", "h", "p":
		m.horizon = wrap(m.horizon-1, len(domain.HorizonBands))
	case "down", "j":
		m.employee = wrap(m.employee+1, len(domain.EmployeeBands))
	case "up", "k":
		m.employee = wrap(m.employee-1, len(domain.EmployeeBands))
	}
	return m, nil
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
