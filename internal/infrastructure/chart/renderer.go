package chart

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"BankruptcySentiment/internal/domain"
	"BankruptcySentiment/internal/ports"
)

// SVGRenderer writes one SVG file per series into a directory.
type SVGRenderer struct {
	dir    string
	cfg    Config
	logger *slog.Logger
}

var _ ports.ChartRenderer = (*SVGRenderer)(nil)

// NewSVGRenderer renders into dir with the default layout resized to
// width x height (ignored when either is zero).
func NewSVGRenderer(dir string, width, height int, log *slog.Logger) *SVGRenderer {
	return &SVGRenderer{dir: dir, cfg: DefaultConfig().withSize(width, height), logger: log}
}

// FileName names the chart of a band pair, graph{horizon}_{employee}.svg.
func FileName(pair domain.BandPair) string {
	return fmt.Sprintf("graph%d_%d.svg", int(pair.Horizon), int(pair.Employee))
}

// Render writes the chart and returns its path.
func (r *SVGRenderer) Render(ctx context.Context, series domain.QuarterlySeries) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(r.dir, FileName(series.Pair))
	if err := os.WriteFile(path, []byte(SeriesSVG(series, r.cfg)), 0o644); err != nil {
		return "", fmt.Errorf("write chart %s: %w", path, err)
	}

	if r.logger != nil {
		r.logger.Debug("chart rendered", "path", path, "points", len(series.Points))
	}
	return path, nil
}
