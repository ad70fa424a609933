package viewer

import (
	"fmt"
	"strings"
	"time"

	"BankruptcySentiment/internal/domain"
	"BankruptcySentiment/internal/infrastructure/chart"
)

const barWidth = 40

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(chart.Title))
	b.WriteString("\n")

	pair := m.Pair()
	b.WriteString(BandStyle.Render(fmt.Sprintf("horizon %d/%d: %s", m.horizon+1, len(domain.HorizonBands), pair.Horizon.Label())))
	b.WriteString(" ")
	b.WriteString(BandStyle.Render(fmt.Sprintf("size %d/%d: %s", m.employee+1, len(domain.EmployeeBands), pair.Employee.Label())))
	b.WriteString("\n\n")

	entry, ok := m.Current()
	if !ok {
		b.WriteString(ErrorStyle.Render("No chart rendered for this band pair."))
	} else {
		b.WriteString(BoxStyle.Render(bars(entry)))
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("Chart: " + entry.Path))
	}

	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("←/→ horizon • ↑/↓ business size • q quit"))
	b.WriteString("\n")
	return b.String()
}

func bars(e Entry) string {
	var b strings.Builder
	for i, p := range e.Series.Points {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p.Snapshot.Format(time.DateOnly))
		b.WriteString("\n")
		b.WriteString(PositiveStyle.Render(bar(p.PositivePercent())))
		fmt.Fprintf(&b, " %5.1f%% positive (%d/%d)\n", p.PositivePercent(), p.Positive, p.Total)
		if p.HasBankruptcyData {
			b.WriteString(BankruptStyle.Render(bar(p.BankruptcyPercentage)))
			fmt.Fprintf(&b, " %5.1f%% expecting bankruptcy\n", p.BankruptcyPercentage)
		} else {
			b.WriteString(InfoStyle.Render("no bankruptcy data\n"))
		}
	}
	return b.String()
}

// bar draws a percentage on a fixed-width scale.
func bar(percent float64) string {
	n := int(percent / 100 * barWidth)
	n = min(max(n, 0), barWidth)
	return strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
}
