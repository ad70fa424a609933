package ports

import (
	"context"

	"BankruptcySentiment/internal/domain"
)

// CorpusReader loads the raw article records of one outlet corpus.
type CorpusReader interface {
	Read(ctx context.Context, path string) ([]domain.RawRecord, error)
}

// SentimentScorer turns a text into a polarity profile (VADER-like services).
type SentimentScorer interface {
	PolarityScores(ctx context.Context, text string) (domain.PolarityProfile, error)
}

// ChartRenderer renders a quarterly series and persists the image, returning its location.
type ChartRenderer interface {
	Render(ctx context.Context, series domain.QuarterlySeries) (string, error)
}
