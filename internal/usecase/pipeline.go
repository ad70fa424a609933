package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"BankruptcySentiment/internal/bankruptcy"
	"BankruptcySentiment/internal/correlation"
	"BankruptcySentiment/internal/domain"
	"BankruptcySentiment/internal/ports"
	"BankruptcySentiment/internal/relevance"
	"BankruptcySentiment/internal/sentiment"
	"BankruptcySentiment/internal/source"
)

// DefaultWorkers bounds per-source and per-file parallelism.
const DefaultWorkers = 4

// TableLoader loads one statistics extract.
type TableLoader interface {
	LoadFile(path string) (bankruptcy.Table, error)
}

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Reader     ports.CorpusReader
	Registry   *source.Registry
	Aggregator *sentiment.Aggregator
	Loader     TableLoader
	Renderer   ports.ChartRenderer
	Logger     *slog.Logger
	Workers    int
}

// Pipeline implements the sentiment/bankruptcy correlation workflow.
type Pipeline struct {
	reader     ports.CorpusReader
	registry   *source.Registry
	aggregator *sentiment.Aggregator
	loader     TableLoader
	renderer   ports.ChartRenderer
	assembler  *correlation.Assembler
	logger     *slog.Logger
	workers    int
}

// CorpusSpec names one outlet corpus. A nil Vocabulary selects the
// source's default.
type CorpusSpec struct {
	Source     domain.Source
	Path       string
	Vocabulary relevance.Vocabulary
}

// Request selects the inputs of one run. Empty Pairs means every band pair.
type Request struct {
	Corpora         []CorpusSpec
	StatisticsFiles []string
	Pairs           []domain.BandPair
	SkipRender      bool
}

// SourceStats counts records at each stage for one source.
type SourceStats struct {
	Source     domain.Source
	Raw        int
	Normalized int
	Relevant   int
	Scored     int
	Skipped    int
}

// Result is the outcome of a successful run. Rendered[i] is the chart of
// Series[i], empty when rendering was skipped.
type Result struct {
	Series   []domain.QuarterlySeries
	Rendered []string
	Stats    []SourceStats
	Tables   []bankruptcy.Table
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	workers := deps.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Pipeline{
		reader:     deps.Reader,
		registry:   deps.Registry,
		aggregator: deps.Aggregator,
		loader:     deps.Loader,
		renderer:   deps.Renderer,
		assembler:  correlation.NewAssembler(deps.Aggregator),
		logger:     deps.Logger,
		workers:    workers,
	}
}

// Run reads and scores every corpus, loads the statistics files, assembles
// the requested series and renders them. Assembly failures abort the run
// before anything is rendered.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	if err := p.validate(req); err != nil {
		return Result{}, err
	}

	articles, stats, err := p.scoreCorpora(ctx, req.Corpora)
	if err != nil {
		return Result{}, err
	}

	tables, err := p.loadTables(ctx, req.StatisticsFiles)
	if err != nil {
		return Result{}, err
	}

	pairs := req.Pairs
	if len(pairs) == 0 {
		pairs = domain.AllBandPairs()
	}

	result := Result{Stats: stats, Tables: tables, Series: make([]domain.QuarterlySeries, 0, len(pairs))}
	for _, pair := range pairs {
		series, err := p.assembler.Assemble(articles, tables, pair)
		if err != nil {
			return Result{}, fmt.Errorf("assemble %s / %s: %w", pair.Horizon, pair.Employee, err)
		}
		result.Series = append(result.Series, series)
	}
	p.info("series assembled", "count", len(result.Series), "snapshots", len(tables))

	result.Rendered = make([]string, len(result.Series))
	if req.SkipRender || p.renderer == nil {
		return result, nil
	}
	for i, series := range result.Series {
		path, err := p.renderer.Render(ctx, series)
		if err != nil {
			return Result{}, fmt.Errorf("render %s / %s: %w", series.HorizonLabel, series.EmployeeLabel, err)
		}
		result.Rendered[i] = path
	}
	p.info("charts rendered", "count", len(result.Rendered))

	return result, nil
}

func (p *Pipeline) validate(req Request) error {
	switch {
	case p.reader == nil:
		return errors.New("corpus reader is not configured")
	case p.registry == nil:
		return errors.New("source registry is not configured")
	case p.aggregator == nil:
		return errors.New("sentiment aggregator is not configured")
	case p.loader == nil:
		return errors.New("statistics loader is not configured")
	case len(req.StatisticsFiles) == 0:
		return errors.New("no statistics files requested")
	}

	seen := make(map[domain.Source]struct{}, len(req.Corpora))
	for _, c := range req.Corpora {
		if _, dup := seen[c.Source]; dup {
			return fmt.Errorf("source %s requested twice", c.Source)
		}
		seen[c.Source] = struct{}{}
	}
	return nil
}

// scoreCorpora runs normalize, filter and score per source in parallel. Each
// goroutine writes only its own slot.
func (p *Pipeline) scoreCorpora(ctx context.Context, corpora []CorpusSpec) (map[domain.Source][]domain.ScoredArticle, []SourceStats, error) {
	scored := make([][]domain.ScoredArticle, len(corpora))
	stats := make([]SourceStats, len(corpora))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, spec := range corpora {
		g.Go(func() error {
			out, st, err := p.scoreCorpus(gctx, spec)
			if err != nil {
				return fmt.Errorf("source %s: %w", spec.Source, err)
			}
			scored[i], stats[i] = out, st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	articles := make(map[domain.Source][]domain.ScoredArticle, len(corpora))
	for i, spec := range corpora {
		articles[spec.Source] = scored[i]
	}
	return articles, stats, nil
}

func (p *Pipeline) scoreCorpus(ctx context.Context, spec CorpusSpec) ([]domain.ScoredArticle, SourceStats, error) {
	st := SourceStats{Source: spec.Source}

	raw, err := p.reader.Read(ctx, spec.Path)
	if err != nil {
		return nil, st, fmt.Errorf("read corpus: %w", err)
	}
	st.Raw = len(raw)

	normalized, err := p.registry.Normalize(spec.Source, raw)
	if err != nil {
		return nil, st, err
	}
	for _, skipped := range normalized.Skipped {
		p.warn("record skipped", "source", spec.Source, "error", skipped)
	}
	st.Normalized = len(normalized.Records)

	vocab := spec.Vocabulary
	if vocab == nil {
		vocab = relevance.ForSource(spec.Source)
	}
	relevant := relevance.Filter(normalized.Records, vocab)
	st.Relevant = len(relevant)

	out, err := p.aggregator.Score(ctx, relevant)
	if err != nil {
		return nil, st, fmt.Errorf("score: %w", err)
	}
	st.Scored = len(out)
	st.Skipped = len(normalized.Skipped) + st.Relevant - st.Scored

	p.info("source processed", "source", spec.Source, "raw", st.Raw, "normalized", st.Normalized,
		"relevant", st.Relevant, "scored", st.Scored, "skipped", st.Skipped)
	return out, st, nil
}

// loadTables loads every statistics file in parallel and orders the tables
// by snapshot.
func (p *Pipeline) loadTables(ctx context.Context, files []string) ([]bankruptcy.Table, error) {
	tables := make([]bankruptcy.Table, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			table, err := p.loader.LoadFile(path)
			if err != nil {
				return err
			}
			tables[i] = table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load statistics: %w", err)
	}

	for _, t := range tables {
		p.info("statistics loaded", "path", t.Path, "snapshot", t.Snapshot.Format("2006-01-02"),
			"records", len(t.Records), "skipped", len(t.Skipped))
	}
	return correlation.OrderTables(tables)
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
