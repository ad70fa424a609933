package viewer

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary  = "#7D56F4"
	colorPositive = "#2196F3"
	colorBankrupt = "#EF5350"
	colorInfo     = "#626262"
	colorBorder   = "#874BFD"
	colorError    = "#FF0000"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary)).
			MarginBottom(1)

	BandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color(colorPrimary)).
			Padding(0, 1)

	PositiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorPositive))

	BankruptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorBankrupt))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorInfo))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError))

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder)).
			Padding(1, 2)
)
