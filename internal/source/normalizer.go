package source

import (
	"fmt"
	"strings"

	"BankruptcySentiment/internal/domain"
)

// Result is the outcome of normalizing one corpus. Skipped holds one
// *domain.RecordError per dropped raw record.
type Result struct {
	Records []domain.ArticleRecord
	Skipped []error
}

// Normalize converts the raw records of src using its registered variant.
// Only an unknown source fails the whole batch.
func (r *Registry) Normalize(src domain.Source, raw []domain.RawRecord) (Result, error) {
	v, err := r.Resolve(src)
	if err != nil {
		return Result{}, err
	}
	return v.NormalizeAll(raw), nil
}

// NormalizeAll converts every record it can and reports the rest.
func (v Variant) NormalizeAll(raw []domain.RawRecord) Result {
	res := Result{Records: make([]domain.ArticleRecord, 0, len(raw))}
	for i, rec := range raw {
		article, err := v.Normalize(i, rec)
		if err != nil {
			res.Skipped = append(res.Skipped, err)
			continue
		}
		res.Records = append(res.Records, article)
	}
	return res
}

// Normalize converts a single raw record. Errors are *domain.RecordError
// wrapping domain.ErrSchemaMismatch or domain.ErrMalformedDate.
func (v Variant) Normalize(index int, rec domain.RawRecord) (domain.ArticleRecord, error) {
	title, err := v.text(index, rec, FieldTitle)
	if err != nil {
		return domain.ArticleRecord{}, err
	}
	body, err := v.text(index, rec, v.BodyField)
	if err != nil {
		return domain.ArticleRecord{}, err
	}
	rawDate, ok := rec[FieldPublishTime]
	if !ok {
		return domain.ArticleRecord{}, v.recordErr(index, FieldPublishTime,
			fmt.Errorf("%w: field absent", domain.ErrSchemaMismatch))
	}

	if v.ParseDate == nil {
		return domain.ArticleRecord{}, v.recordErr(index, FieldPublishTime, fmt.Errorf("no date parser registered"))
	}
	date, err := v.ParseDate(rawDate)
	if err != nil {
		return domain.ArticleRecord{}, v.recordErr(index, FieldPublishTime, err)
	}

	return domain.ArticleRecord{
		Title:       title,
		Body:        body,
		PublishDate: date,
		Source:      v.Source,
	}, nil
}

func (v Variant) text(index int, rec domain.RawRecord, field string) (string, error) {
	value, ok := rec[field]
	if !ok {
		return "", v.recordErr(index, field, fmt.Errorf("%w: field absent", domain.ErrSchemaMismatch))
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", v.recordErr(index, field, fmt.Errorf("%w: field empty", domain.ErrSchemaMismatch))
	}
	return value, nil
}

func (v Variant) recordErr(index int, field string, err error) error {
	return &domain.RecordError{Source: v.Source, Index: index, Field: field, Err: err}
}
