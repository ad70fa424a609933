package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"BankruptcySentiment/internal/domain"
	"BankruptcySentiment/internal/ports"
)

// Aggregator scores articles with one shared scorer and counts positive
// articles over date ranges.
type Aggregator struct {
	scorer    ports.SentimentScorer
	threshold float64
	logger    *slog.Logger
}

// Option customises an Aggregator.
type Option func(*Aggregator)

// WithThreshold overrides domain.DefaultPositiveThreshold.
func WithThreshold(threshold float64) Option {
	return func(a *Aggregator) { a.threshold = threshold }
}

// WithLogger attaches a logger for skipped records.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) { a.logger = logger }
}

// NewAggregator builds an aggregator around scorer. The scorer is reused for
// every call; build one aggregator per run.
func NewAggregator(scorer ports.SentimentScorer, opts ...Option) *Aggregator {
	a := &Aggregator{scorer: scorer, threshold: domain.DefaultPositiveThreshold}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Threshold returns the compound score above which a body counts as positive.
func (a *Aggregator) Threshold() float64 {
	return a.threshold
}

// Score computes the title and body profile of every record. A record whose
// scoring fails is skipped; context cancellation aborts the batch.
func (a *Aggregator) Score(ctx context.Context, records []domain.ArticleRecord) ([]domain.ScoredArticle, error) {
	if a.scorer == nil {
		return nil, fmt.Errorf("sentiment scorer is not configured")
	}

	scored := make([]domain.ScoredArticle, 0, len(records))
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		title, err := a.scorer.PolarityScores(ctx, rec.Title)
		if err != nil {
			a.skip(ctx, rec, i, "title", err)
			continue
		}
		body, err := a.scorer.PolarityScores(ctx, rec.Body)
		if err != nil {
			a.skip(ctx, rec, i, "body", err)
			continue
		}

		scored = append(scored, domain.ScoredArticle{Article: rec, Title: title, Body: body})
	}
	return scored, nil
}

// IsPositive applies the positivity policy to one scored article.
func (a *Aggregator) IsPositive(article domain.ScoredArticle) bool {
	return article.Body.Compound > a.threshold
}

// PositiveRatio counts, among articles with start < publish date <= end, how
// many are positive and how many were considered.
func (a *Aggregator) PositiveRatio(scored []domain.ScoredArticle, start, end time.Time) (positive, total int) {
	for _, s := range scored {
		d := s.Article.PublishDate
		if !d.After(start) || d.After(end) {
			continue
		}
		total++
		if a.IsPositive(s) {
			positive++
		}
	}
	return positive, total
}

// Ratio divides positive by total, refusing an empty range.
func Ratio(positive, total int) (float64, error) {
	if total == 0 {
		return 0, fmt.Errorf("%w: no articles in range", domain.ErrEmptyAggregate)
	}
	return float64(positive) / float64(total), nil
}

func (a *Aggregator) skip(ctx context.Context, rec domain.ArticleRecord, index int, field string, err error) {
	if ctx.Err() != nil || a.logger == nil {
		return
	}
	a.logger.Warn("skip article: scoring failed",
		"source", rec.Source, "index", index, "field", field, "error", err)
}
