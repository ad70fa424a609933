package domain

import (
	"fmt"
	"time"
)

// Source identifies one of the news outlets whose corpora feed the pipeline.
type Source string

const (
	SourceA Source = "A"
	SourceB Source = "B"
	SourceC Source = "C"
)

// Sources lists the closed set of supported sources in a stable order.
var Sources = []Source{SourceA, SourceB, SourceC}

// ParseSource validates a source identifier taken from configuration.
func ParseSource(value string) (Source, error) {
	for _, s := range Sources {
		if string(s) == value {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown source %q", value)
}

// RawRecord is one article as produced by a crawler, before normalization.
type RawRecord map[string]string

// ArticleRecord is the canonical article after normalization.
type ArticleRecord struct {
	Title       string
	Body        string
	PublishDate time.Time
	Source      Source
}

// TitleText exposes the title for vocabulary matching.
func (a ArticleRecord) TitleText() string { return a.Title }

// BodyText exposes the body for vocabulary matching.
func (a ArticleRecord) BodyText() string { return a.Body }

// Date builds a timezone-naive calendar date (UTC midnight).
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TruncateDay drops the clock part of t, keeping its calendar date.
func TruncateDay(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}
