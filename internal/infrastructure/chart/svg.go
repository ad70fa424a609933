// Package chart renders quarterly series as standalone SVG documents.
package chart

import (
	"fmt"
	"html"
	"math"
	"strings"
	"time"

	"BankruptcySentiment/internal/domain"
)

// Title is the heading of every series chart.
const Title = "Positive Media Representation vs Time until Bankruptcy"

// Config holds rendering parameters.
type Config struct {
	Width        int
	Height       int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
	BgColor      string
	GridColor    string
	TextColor    string
	PositiveFill string
	BankruptFill string
	FontSize     int
}

// DefaultConfig returns the layout used by the CLI.
func DefaultConfig() Config {
	return Config{
		Width:        900,
		Height:       480,
		MarginTop:    50,
		MarginRight:  30,
		MarginBottom: 110,
		MarginLeft:   60,
		BgColor:      "#ffffff",
		GridColor:    "#e8e8e8",
		TextColor:    "#333333",
		PositiveFill: "#2196f3",
		BankruptFill: "#ef5350",
		FontSize:     11,
	}
}

// withSize overrides the canvas size when both dimensions are set.
func (c Config) withSize(width, height int) Config {
	if width > 0 && height > 0 {
		c.Width, c.Height = width, height
	}
	return c
}

func (c Config) plotArea() (x, y, w, h int) {
	return c.MarginLeft, c.MarginTop,
		c.Width - c.MarginLeft - c.MarginRight,
		c.Height - c.MarginTop - c.MarginBottom
}

// SeriesSVG draws grouped bars per snapshot: positive-article percentage next
// to the bankruptcy percentage. Snapshots without bankruptcy data get no
// second bar.
func SeriesSVG(series domain.QuarterlySeries, cfg Config) string {
	if len(series.Points) == 0 {
		return emptySVG(cfg, "No data available")
	}

	px, py, pw, ph := cfg.plotArea()
	top := axisMax(series.Points)
	toY := func(v float64) float64 {
		return float64(py+ph) - v/top*float64(ph)
	}

	var sb strings.Builder
	sb.WriteString(svgHeader(cfg))
	fmt.Fprintf(&sb, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`, cfg.Width, cfg.Height, cfg.BgColor)
	fmt.Fprintf(&sb, `<text x="%d" y="24" font-size="15" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
		cfg.Width/2, cfg.TextColor, html.EscapeString(Title))

	const gridLines = 5
	for i := 0; i <= gridLines; i++ {
		v := top * float64(i) / gridLines
		y := toY(v)
		fmt.Fprintf(&sb, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="%s" stroke-dasharray="3,3"/>`,
			px, y, px+pw, y, cfg.GridColor)
		fmt.Fprintf(&sb, `<text x="%d" y="%.1f" font-size="%d" fill="%s" text-anchor="end">%.0f%%</text>`,
			px-6, y+4, cfg.FontSize, cfg.TextColor, v)
	}

	slot := float64(pw) / float64(len(series.Points))
	barW := math.Min(slot*0.35, 60)
	for i, p := range series.Points {
		center := float64(px) + slot*(float64(i)+0.5)
		bar(&sb, center-barW, barW, toY(p.PositivePercent()), float64(py+ph), cfg.PositiveFill, p.PositivePercent(), cfg)
		if p.HasBankruptcyData {
			bar(&sb, center, barW, toY(p.BankruptcyPercentage), float64(py+ph), cfg.BankruptFill, p.BankruptcyPercentage, cfg)
		}
		fmt.Fprintf(&sb, `<text x="%.1f" y="%d" font-size="%d" fill="%s" text-anchor="middle">%s</text>`,
			center, py+ph+18, cfg.FontSize, cfg.TextColor, p.Snapshot.Format(time.DateOnly))
	}
	fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#999"/>`, px, py+ph, px+pw, py+ph)

	legendY := py + ph + 48
	legend(&sb, px, legendY, cfg.PositiveFill, "Positive articles (%)", cfg)
	legend(&sb, px, legendY+20, cfg.BankruptFill,
		fmt.Sprintf("Businesses (%s) expecting bankruptcy in %s (%%)", series.EmployeeLabel, series.HorizonLabel), cfg)

	sb.WriteString("</svg>")
	return sb.String()
}

func bar(sb *strings.Builder, x, w, y, base float64, fill string, value float64, cfg Config) {
	fmt.Fprintf(sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" rx="2"/>`, x, y, w, base-y, fill)
	fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" font-size="%d" fill="%s" text-anchor="middle">%.1f</text>`,
		x+w/2, y-4, cfg.FontSize, cfg.TextColor, value)
}

func legend(sb *strings.Builder, x, y int, fill, label string, cfg Config) {
	fmt.Fprintf(sb, `<rect x="%d" y="%d" width="12" height="12" fill="%s"/>`, x, y-10, fill)
	fmt.Fprintf(sb, `<text x="%d" y="%d" font-size="%d" fill="%s">%s</text>`,
		x+18, y, cfg.FontSize, cfg.TextColor, html.EscapeString(label))
}

// axisMax rounds the largest plotted value up to the next multiple of 10.
func axisMax(points []domain.SeriesPoint) float64 {
	top := 10.0
	for _, p := range points {
		top = math.Max(top, p.PositivePercent())
		if p.HasBankruptcyData {
			top = math.Max(top, p.BankruptcyPercentage)
		}
	}
	return math.Ceil(top/10) * 10
}

func svgHeader(cfg Config) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
}

func emptySVG(cfg Config, msg string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"><rect width="%d" height="%d" fill="#f5f5f5"/><text x="%d" y="%d" text-anchor="middle" fill="#999" font-size="14">%s</text></svg>`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height, cfg.Width/2, cfg.Height/2, html.EscapeString(msg))
}
