// Package correlation joins per-quarter sentiment counts with bankruptcy
// percentages into the series handed to the chart renderer.
package correlation

import (
	"fmt"
	"sort"
	"time"

	"BankruptcySentiment/internal/bankruptcy"
	"BankruptcySentiment/internal/domain"
)

// PositiveCounter counts positive and total articles in (start, end].
type PositiveCounter interface {
	PositiveRatio(scored []domain.ScoredArticle, start, end time.Time) (positive, total int)
}

// Quarter is one (previous snapshot, snapshot] window with both halves of
// the join evaluated independently.
type Quarter struct {
	Index             int
	Start             time.Time
	End               time.Time
	Positive          int
	Total             int
	Percentage        float64
	HasBankruptcyData bool
}

// Assembler builds quarterly series.
type Assembler struct {
	counter PositiveCounter
}

// NewAssembler builds an assembler around the sentiment counter.
func NewAssembler(counter PositiveCounter) *Assembler {
	return &Assembler{counter: counter}
}

// Epoch is the lower bound of quarter 0: January 1st of the earliest snapshot year.
func Epoch(first time.Time) time.Time {
	return domain.Date(first.Year(), time.January, 1)
}

// OrderTables returns the tables sorted by snapshot, rejecting duplicates.
func OrderTables(tables []bankruptcy.Table) ([]bankruptcy.Table, error) {
	ordered := append([]bankruptcy.Table(nil), tables...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Snapshot.Before(ordered[j].Snapshot)
	})
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Snapshot.Equal(ordered[i-1].Snapshot) {
			return nil, fmt.Errorf("snapshot %s appears in both %s and %s",
				ordered[i].Snapshot.Format(time.DateOnly), ordered[i-1].Path, ordered[i].Path)
		}
	}
	return ordered, nil
}

// Quarters evaluates every quarter for pair without failing on empty ones.
// tables must be ordered by strictly increasing snapshot.
func (a *Assembler) Quarters(articles map[domain.Source][]domain.ScoredArticle, tables []bankruptcy.Table, pair domain.BandPair) ([]Quarter, error) {
	if a.counter == nil {
		return nil, fmt.Errorf("positive counter is not configured")
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("no snapshots to assemble")
	}
	for i := 1; i < len(tables); i++ {
		if !tables[i].Snapshot.After(tables[i-1].Snapshot) {
			return nil, fmt.Errorf("snapshots out of order: %s then %s",
				tables[i-1].Snapshot.Format(time.DateOnly), tables[i].Snapshot.Format(time.DateOnly))
		}
	}

	quarters := make([]Quarter, len(tables))
	start := Epoch(tables[0].Snapshot)
	for i, table := range tables {
		q := Quarter{Index: i, Start: start, End: table.Snapshot}
		for _, src := range domain.Sources {
			positive, total := a.counter.PositiveRatio(articles[src], q.Start, q.End)
			q.Positive += positive
			q.Total += total
		}
		q.Percentage, q.HasBankruptcyData = bankruptcy.Find(table.Records, pair.Horizon, pair.Employee)

		quarters[i] = q
		start = table.Snapshot
	}
	return quarters, nil
}

// Assemble builds the series for pair. Any quarter without articles fails
// the whole series with domain.ErrEmptyAggregate; no partial series is
// returned.
func (a *Assembler) Assemble(articles map[domain.Source][]domain.ScoredArticle, tables []bankruptcy.Table, pair domain.BandPair) (domain.QuarterlySeries, error) {
	quarters, err := a.Quarters(articles, tables, pair)
	if err != nil {
		return domain.QuarterlySeries{}, err
	}

	series := domain.QuarterlySeries{
		Pair:          pair,
		EmployeeLabel: pair.Employee.Label(),
		HorizonLabel:  pair.Horizon.Label(),
		Points:        make([]domain.SeriesPoint, 0, len(quarters)),
	}
	for _, q := range quarters {
		if q.Total == 0 {
			return domain.QuarterlySeries{}, fmt.Errorf("quarter %d (%s, %s]: %w: no articles across sources",
				q.Index, q.Start.Format(time.DateOnly), q.End.Format(time.DateOnly), domain.ErrEmptyAggregate)
		}
		series.Points = append(series.Points, domain.SeriesPoint{
			Snapshot:             q.End,
			Positive:             q.Positive,
			Total:                q.Total,
			PositiveRatio:        float64(q.Positive) / float64(q.Total),
			BankruptcyPercentage: q.Percentage,
			HasBankruptcyData:    q.HasBankruptcyData,
		})
	}
	return series, nil
}
