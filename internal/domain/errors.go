package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaMismatch marks a raw record or row lacking an expected field.
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrMalformedDate marks a date string that does not fit its expected layout.
	ErrMalformedDate = errors.New("malformed date")
	// ErrNoMatchingColumn marks a statistics header missing a required column.
	ErrNoMatchingColumn = errors.New("no matching column")
	// ErrEmptyAggregate marks an aggregate with no contributing records.
	ErrEmptyAggregate = errors.New("empty aggregate")
)

// RecordError describes a recoverable failure of a single record.
type RecordError struct {
	Source Source
	Index  int
	Field  string
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("source %s record %d field %q: %v", e.Source, e.Index, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// FileError describes a structural failure that makes a whole file unusable.
type FileError struct {
	Path  string
	Field string
	Err   error
}

func (e *FileError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("file %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("file %s field %q: %v", e.Path, e.Field, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
