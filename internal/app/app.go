package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"BankruptcySentiment/internal/bankruptcy"
	"BankruptcySentiment/internal/config"
	"BankruptcySentiment/internal/domain"
	"BankruptcySentiment/internal/infrastructure/chart"
	"BankruptcySentiment/internal/infrastructure/corpus"
	"BankruptcySentiment/internal/infrastructure/lexicon"
	"BankruptcySentiment/internal/infrastructure/ml"
	"BankruptcySentiment/internal/logging"
	"BankruptcySentiment/internal/ports"
	"BankruptcySentiment/internal/relevance"
	"BankruptcySentiment/internal/sentiment"
	"BankruptcySentiment/internal/source"
	"BankruptcySentiment/internal/usecase"
)

// Application wires configs to use cases.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
	logger   *slog.Logger
	runID    string
}

// New builds a runnable application instance. Every instance gets its own
// run_id attached to all log lines.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}
	runID := uuid.NewString()
	baseLogger = baseLogger.With("run_id", runID)

	cleaner := corpus.NewCleaner(source.FieldTitle, source.FieldBody, source.FieldDescription)
	reader := corpus.NewJSONReader(cleaner, baseLogger.With("component", "corpus"))

	aggregator := sentiment.NewAggregator(newScorer(cfg.Scorer),
		sentiment.WithThreshold(cfg.Pipeline.Threshold()),
		sentiment.WithLogger(baseLogger.With("component", "sentiment")))

	loader := bankruptcy.NewLoader(
		bankruptcy.WithRegion(cfg.Pipeline.Region),
		bankruptcy.WithLoaderLogger(baseLogger.With("component", "bankruptcy")))

	renderer := chart.NewSVGRenderer(cfg.Output.Dir, cfg.Output.Width, cfg.Output.Height,
		baseLogger.With("component", "chart"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Reader:     reader,
		Registry:   source.DefaultRegistry(),
		Aggregator: aggregator,
		Loader:     loader,
		Renderer:   renderer,
		Logger:     baseLogger.With("component", "pipeline"),
		Workers:    cfg.Pipeline.Workers,
	})
	return &Application{cfg: cfg, pipeline: pipeline, logger: baseLogger, runID: runID}
}

func newScorer(cfg config.ScorerConfig) ports.SentimentScorer {
	if cfg.Backend == config.BackendHTTP {
		return ml.NewClient(cfg.Endpoint, cfg.APIKey, cfg.Timeout)
	}
	return lexicon.New()
}

// RunID identifies this run in the logs.
func (a *Application) RunID() string {
	return a.runID
}

// Run executes the pipeline for pairs (all pairs when empty).
func (a *Application) Run(ctx context.Context, pairs []domain.BandPair, render bool) (usecase.Result, error) {
	req, err := a.request(pairs, render)
	if err != nil {
		return usecase.Result{}, err
	}

	a.logger.Info("run started", "sources", len(req.Corpora), "statistics", len(req.StatisticsFiles), "pairs", len(pairs))
	result, err := a.pipeline.Run(ctx, req)
	if err != nil {
		a.logger.Error("run failed", "error", err)
		return usecase.Result{}, err
	}
	a.logger.Info("run finished", "series", len(result.Series))
	return result, nil
}

func (a *Application) request(pairs []domain.BandPair, render bool) (usecase.Request, error) {
	req := usecase.Request{
		StatisticsFiles: a.cfg.Statistics.Files,
		Pairs:           pairs,
		SkipRender:      !render,
	}
	for _, s := range a.cfg.Sources {
		src, err := domain.ParseSource(s.Variant)
		if err != nil {
			return usecase.Request{}, fmt.Errorf("source %s: %w", s.Name, err)
		}
		spec := usecase.CorpusSpec{Source: src, Path: s.Path}
		if len(s.Vocabulary) > 0 {
			spec.Vocabulary = relevance.NewVocabulary(s.Vocabulary...)
		}
		req.Corpora = append(req.Corpora, spec)
	}
	return req, nil
}
