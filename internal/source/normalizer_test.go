package source

import (
	"errors"
	"testing"
	"time"

	"BankruptcySentiment/internal/domain"
)

func TestDefaultRegistryBodyFields(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	want := map[domain.Source]string{
		domain.SourceA: FieldDescription,
		domain.SourceB: FieldBody,
		domain.SourceC: FieldBody,
	}
	for src, field := range want {
		v, err := reg.Resolve(src)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", src, err)
		}
		if v.BodyField != field {
			t.Fatalf("source %s body field = %q, want %q", src, v.BodyField, field)
		}
	}

	if _, err := reg.Resolve(domain.Source("Z")); err == nil {
		t.Fatalf("expected error for unregistered source")
	}
}

func TestNormalizePerSource(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	cases := []struct {
		src  domain.Source
		raw  domain.RawRecord
		body string
		date time.Time
	}{
		{
			src:  domain.SourceA,
			raw:  domain.RawRecord{"title": "Bank rates", "description": "Rates rise.", "publish_time": "2020-07-14T10:00:00Z"},
			body: "Rates rise.",
			date: domain.Date(2020, time.July, 14),
		},
		{
			src:  domain.SourceB,
			raw:  domain.RawRecord{"title": " Tax relief ", "body": "Small shops wait.", "publish_time": "Nov 20, 2020, 6:00AM ET"},
			body: "Small shops wait.",
			date: domain.Date(2020, time.November, 20),
		},
		{
			src:  domain.SourceC,
			raw:  domain.RawRecord{"title": "Sales slump", "body": "Retail sales fell.", "publish_time": "Friday, March 5, 2021"},
			body: "Retail sales fell.",
			date: domain.Date(2021, time.March, 5),
		},
	}

	for _, c := range cases {
		res, err := reg.Normalize(c.src, []domain.RawRecord{c.raw})
		if err != nil {
			t.Fatalf("Normalize(%s): %v", c.src, err)
		}
		if len(res.Records) != 1 || len(res.Skipped) != 0 {
			t.Fatalf("source %s: got %d records, %d skipped", c.src, len(res.Records), len(res.Skipped))
		}
		got := res.Records[0]
		if got.Body != c.body {
			t.Fatalf("source %s body = %q, want %q", c.src, got.Body, c.body)
		}
		if !got.PublishDate.Equal(c.date) {
			t.Fatalf("source %s date = %v, want %v", c.src, got.PublishDate, c.date)
		}
		if got.Source != c.src {
			t.Fatalf("source tag = %s, want %s", got.Source, c.src)
		}
		if got.Title == "" || got.Title[0] == ' ' {
			t.Fatalf("title not trimmed: %q", got.Title)
		}
	}
}

func TestNormalizeSkipsBadRecords(t *testing.T) {
	t.Parallel()

	v, err := DefaultRegistry().Resolve(domain.SourceA)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	raw := []domain.RawRecord{
		{"title": "ok", "description": "fine", "publish_time": "2021-05-28"},
		{"title": "wrong body key", "body": "cbc uses description", "publish_time": "2021-05-28"},
		{"title": "bad date", "description": "text", "publish_time": "May 28, 2021"},
		{"title": "empty", "description": "   ", "publish_time": "2021-05-28"},
		{"description": "no title", "publish_time": "2021-05-28"},
		{"title": "no date", "description": "text"},
		{"title": "ok too", "description": "fine", "publish_time": "2021-08-27"},
	}

	res := v.NormalizeAll(raw)
	if len(res.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(res.Records))
	}
	if len(res.Skipped) != 5 {
		t.Fatalf("expected 5 skipped, got %d", len(res.Skipped))
	}

	wantKinds := []error{domain.ErrSchemaMismatch, domain.ErrMalformedDate, domain.ErrSchemaMismatch, domain.ErrSchemaMismatch, domain.ErrSchemaMismatch}
	wantIndex := []int{1, 2, 3, 4, 5}
	for i, skipped := range res.Skipped {
		if !errors.Is(skipped, wantKinds[i]) {
			t.Fatalf("skipped[%d] = %v, want %v", i, skipped, wantKinds[i])
		}
		var recErr *domain.RecordError
		if !errors.As(skipped, &recErr) {
			t.Fatalf("skipped[%d] is not a RecordError: %T", i, skipped)
		}
		if recErr.Index != wantIndex[i] {
			t.Fatalf("skipped[%d] index = %d, want %d", i, recErr.Index, wantIndex[i])
		}
	}

	for _, rec := range res.Records {
		if rec.PublishDate.IsZero() {
			t.Fatalf("normalized record with zero date: %+v", rec)
		}
	}
}

func TestNormalizeUnknownSource(t *testing.T) {
	t.Parallel()

	if _, err := NewRegistry().Normalize(domain.SourceA, nil); err == nil {
		t.Fatalf("expected error for empty registry")
	}
}
