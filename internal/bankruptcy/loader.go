// Package bankruptcy loads the quarterly business-conditions extracts and
// answers percentage lookups per (horizon band, employee band).
package bankruptcy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"BankruptcySentiment/internal/domain"
)

const (
	bankruptcyMarker = "bankruptcy"
	employeeSuffix   = "employees"
)

// Table is one loaded statistics file.
type Table struct {
	Path     string
	Snapshot time.Time
	Columns  Columns
	Records  []domain.BankruptcyRecord
	// Skipped lists rows dropped for malformed fields.
	Skipped []error
}

// Loader reads statistics files.
type Loader struct {
	region string
	logger *slog.Logger
}

// LoaderOption customises a Loader.
type LoaderOption func(*Loader)

// WithRegion changes the GEO value kept (domain.NationalRegion by default).
func WithRegion(region string) LoaderOption {
	return func(l *Loader) {
		if region != "" {
			l.region = region
		}
	}
}

// WithLoaderLogger attaches a logger for column detection and skipped rows.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader builds a loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{region: domain.NationalRegion}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile reads a statistics file whose name carries its snapshot date.
// Structural problems come back as *domain.FileError.
func (l *Loader) LoadFile(path string) (Table, error) {
	snapshot, err := SnapshotFromFilename(path)
	if err != nil {
		return Table{}, &domain.FileError{Path: path, Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return Table{}, &domain.FileError{Path: path, Err: fmt.Errorf("open: %w", err)}
	}
	defer f.Close()

	return l.Parse(f, path, snapshot)
}

// Parse reads a statistics extract from r. path only labels errors.
func (l *Loader) Parse(r io.Reader, path string, snapshot time.Time) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, &domain.FileError{Path: path, Field: "header", Err: fmt.Errorf("%w: empty file", domain.ErrNoMatchingColumn)}
		}
		return Table{}, &domain.FileError{Path: path, Field: "header", Err: fmt.Errorf("read header: %w", err)}
	}

	cols, err := DetectColumns(header)
	if err != nil {
		return Table{}, &domain.FileError{Path: path, Field: lengthOfTimeMarker, Err: err}
	}
	l.debug("columns detected", "path", path, "horizon", cols.HorizonName, "reason", cols.ReasonName)

	table := Table{Path: path, Snapshot: snapshot, Columns: cols}
	width := cols.width()
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			table.Skipped = append(table.Skipped, fmt.Errorf("line %d: %w: %v", line, domain.ErrSchemaMismatch, parseErr.Err))
			continue
		}
		if err != nil {
			return Table{}, &domain.FileError{Path: path, Err: fmt.Errorf("line %d: %w", line, err)}
		}
		if len(row) < width {
			table.Skipped = append(table.Skipped, fmt.Errorf("line %d: %w: %d fields, need %d",
				line, domain.ErrSchemaMismatch, len(row), width))
			continue
		}

		rec, keep, err := l.record(row, cols, snapshot)
		if err != nil {
			table.Skipped = append(table.Skipped, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if keep {
			table.Records = append(table.Records, rec)
		}
	}

	for _, skipped := range table.Skipped {
		l.warn("skip statistics row", "path", path, "error", skipped)
	}
	return table, nil
}

// record converts one row, reporting whether it belongs to the retained set.
func (l *Loader) record(row []string, cols Columns, snapshot time.Time) (domain.BankruptcyRecord, bool, error) {
	rawValue := strings.TrimSpace(row[cols.Value])
	if rawValue == "" {
		return domain.BankruptcyRecord{}, false, nil
	}

	geo := strings.TrimSpace(row[cols.Geo])
	characteristic := strings.TrimSpace(row[cols.Characteristics])
	if geo != l.region || !strings.HasSuffix(characteristic, employeeSuffix) {
		return domain.BankruptcyRecord{}, false, nil
	}
	if cols.HasReason() && !strings.Contains(row[cols.Reason], bankruptcyMarker) {
		return domain.BankruptcyRecord{}, false, nil
	}

	value, err := strconv.ParseFloat(rawValue, 64)
	if err != nil {
		return domain.BankruptcyRecord{}, false, fmt.Errorf("%w: %s %q is not a number", domain.ErrSchemaMismatch, ColumnValue, rawValue)
	}
	if value < 0 || value > 100 {
		return domain.BankruptcyRecord{}, false, fmt.Errorf("%w: %s %v outside [0,100]", domain.ErrSchemaMismatch, ColumnValue, value)
	}

	return domain.BankruptcyRecord{
		Region:        geo,
		EmployeeLabel: characteristic,
		HorizonLabel:  strings.TrimSpace(row[cols.Horizon]),
		Percentage:    value,
		Snapshot:      snapshot,
	}, true, nil
}

// SnapshotFromFilename extracts the date of names like "dataset_2020_07_14.csv".
func SnapshotFromFilename(path string) (time.Time, error) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.Split(base, "_")
	if len(parts) < 4 {
		return time.Time{}, fmt.Errorf("%w: file name %q lacks a _YYYY_MM_DD suffix", domain.ErrMalformedDate, filepath.Base(path))
	}
	stamp := strings.Join(parts[len(parts)-3:], "_")
	t, err := time.Parse("2006_01_02", stamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: file name %q: %v", domain.ErrMalformedDate, filepath.Base(path), err)
	}
	return domain.TruncateDay(t), nil
}

func (l *Loader) debug(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}

func (l *Loader) warn(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Warn(msg, args...)
	}
}
