package sentiment

import (
	"context"
	"errors"
	"testing"
	"time"

	"BankruptcySentiment/internal/domain"
)

// tableScorer returns the compound configured for a text, counting calls.
type tableScorer struct {
	compound map[string]float64
	fail     map[string]bool
	calls    int
}

func (s *tableScorer) PolarityScores(_ context.Context, text string) (domain.PolarityProfile, error) {
	s.calls++
	if s.fail[text] {
		return domain.PolarityProfile{}, errors.New("scorer unavailable")
	}
	return domain.PolarityProfile{Neutral: 1, Compound: s.compound[text]}, nil
}

func scoredAt(date time.Time, compound float64) domain.ScoredArticle {
	return domain.ScoredArticle{
		Article: domain.ArticleRecord{Title: "t", Body: "b", PublishDate: date, Source: domain.SourceA},
		Body:    domain.PolarityProfile{Compound: compound},
	}
}

func TestScoreUsesTitleAndBody(t *testing.T) {
	t.Parallel()

	scorer := &tableScorer{compound: map[string]float64{"good title": 0.6, "bad body": -0.4}}
	agg := NewAggregator(scorer)

	records := []domain.ArticleRecord{{Title: "good title", Body: "bad body", PublishDate: domain.Date(2020, 5, 1)}}
	scored, err := agg.Score(context.Background(), records)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if len(scored) != 1 {
		t.Fatalf("expected 1 scored article, got %d", len(scored))
	}
	if scored[0].Title.Compound != 0.6 || scored[0].Body.Compound != -0.4 {
		t.Fatalf("unexpected profiles: %+v", scored[0])
	}
	if scorer.calls != 2 {
		t.Fatalf("expected 2 scorer calls, got %d", scorer.calls)
	}
}

func TestScoreSkipsFailures(t *testing.T) {
	t.Parallel()

	scorer := &tableScorer{fail: map[string]bool{"broken": true}}
	agg := NewAggregator(scorer)

	records := []domain.ArticleRecord{
		{Title: "broken", Body: "x"},
		{Title: "fine", Body: "broken"},
		{Title: "fine", Body: "fine"},
	}
	scored, err := agg.Score(context.Background(), records)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if len(scored) != 1 {
		t.Fatalf("expected 1 scored article, got %d", len(scored))
	}
}

func TestScoreHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	agg := NewAggregator(&tableScorer{})
	if _, err := agg.Score(ctx, []domain.ArticleRecord{{Title: "a", Body: "b"}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPositiveRatioBoundaries(t *testing.T) {
	t.Parallel()

	start := domain.Date(2020, time.July, 14)
	end := domain.Date(2020, time.November, 13)
	scored := []domain.ScoredArticle{
		scoredAt(start, 0.9),                              // excluded: on lower bound
		scoredAt(start.AddDate(0, 0, 1), 0.21),            // positive
		scoredAt(domain.Date(2020, time.August, 1), 0.20), // not above threshold
		scoredAt(end, 0.5),                                // included: on upper bound
		scoredAt(end.AddDate(0, 0, 1), 0.9),               // excluded: next quarter
	}

	agg := NewAggregator(&tableScorer{})
	positive, total := agg.PositiveRatio(scored, start, end)
	if positive != 2 || total != 3 {
		t.Fatalf("PositiveRatio = (%d, %d), want (2, 3)", positive, total)
	}
}

func TestPositiveRatioThresholdOption(t *testing.T) {
	t.Parallel()

	scored := []domain.ScoredArticle{scoredAt(domain.Date(2021, 1, 2), 0.3)}
	agg := NewAggregator(&tableScorer{}, WithThreshold(0.5))
	if agg.Threshold() != 0.5 {
		t.Fatalf("threshold = %v, want 0.5", agg.Threshold())
	}
	positive, total := agg.PositiveRatio(scored, domain.Date(2021, 1, 1), domain.Date(2021, 3, 1))
	if positive != 0 || total != 1 {
		t.Fatalf("PositiveRatio = (%d, %d), want (0, 1)", positive, total)
	}
}

func TestPositiveRatioTotalIndependentOfOrder(t *testing.T) {
	t.Parallel()

	a := scoredAt(domain.Date(2021, 2, 1), 0.5)
	b := scoredAt(domain.Date(2021, 2, 2), -0.5)
	c := scoredAt(domain.Date(2022, 2, 2), 0.5)

	agg := NewAggregator(&tableScorer{})
	start, end := domain.Date(2021, 1, 1), domain.Date(2021, 12, 31)
	p1, t1 := agg.PositiveRatio([]domain.ScoredArticle{a, b, c}, start, end)
	p2, t2 := agg.PositiveRatio([]domain.ScoredArticle{c, b, a}, start, end)
	if p1 != p2 || t1 != t2 || t1 != 2 {
		t.Fatalf("order dependent result: (%d,%d) vs (%d,%d)", p1, t1, p2, t2)
	}
}

func TestRatio(t *testing.T) {
	t.Parallel()

	if _, err := Ratio(0, 0); !errors.Is(err, domain.ErrEmptyAggregate) {
		t.Fatalf("Ratio(0,0) error = %v, want ErrEmptyAggregate", err)
	}
	got, err := Ratio(1, 4)
	if err != nil || got != 0.25 {
		t.Fatalf("Ratio(1,4) = %v, %v", got, err)
	}
}
