package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"BankruptcySentiment/internal/domain"
	"BankruptcySentiment/internal/usecase"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#874BFD"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func statsTable(stats []usecase.SourceStats) string {
	t := newTable("Source", "Raw", "Normalized", "Relevant", "Scored", "Skipped")
	for _, s := range stats {
		t.Row(string(s.Source),
			fmt.Sprint(s.Raw), fmt.Sprint(s.Normalized), fmt.Sprint(s.Relevant),
			fmt.Sprint(s.Scored), fmt.Sprint(s.Skipped))
	}
	return t.String()
}

func chartsTable(series []domain.QuarterlySeries, rendered []string) string {
	t := newTable("Horizon", "Business size", "Chart")
	for i, s := range series {
		t.Row(s.HorizonLabel, s.EmployeeLabel, rendered[i])
	}
	return t.String()
}

func seriesTable(series domain.QuarterlySeries) string {
	t := newTable("Snapshot", "Positive", "Total", "Positive %", "Bankruptcy %")
	for _, p := range series.Points {
		bankrupt := "n/a"
		if p.HasBankruptcyData {
			bankrupt = fmt.Sprintf("%.1f", p.BankruptcyPercentage)
		}
		t.Row(p.Snapshot.Format(time.DateOnly),
			fmt.Sprint(p.Positive), fmt.Sprint(p.Total),
			fmt.Sprintf("%.1f", p.PositivePercent()), bankrupt)
	}
	title := titleStyle.Render(fmt.Sprintf("%s, %s", series.EmployeeLabel, series.HorizonLabel))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.String())
}
