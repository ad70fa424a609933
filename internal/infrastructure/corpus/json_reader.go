package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"BankruptcySentiment/internal/domain"
	"BankruptcySentiment/internal/ports"
)

// JSONReader loads crawler output: a JSON array of flat objects.
type JSONReader struct {
	cleaner *Cleaner
	logger  *slog.Logger
}

var _ ports.CorpusReader = (*JSONReader)(nil)

// NewJSONReader builds a reader. A nil cleaner keeps field values verbatim.
func NewJSONReader(cleaner *Cleaner, log *slog.Logger) *JSONReader {
	return &JSONReader{cleaner: cleaner, logger: log}
}

// Read decodes the corpus at path. Non-string values are dropped from each
// record; the normalizer reports the missing fields later.
func (r *JSONReader) Read(ctx context.Context, path string) ([]domain.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.FileError{Path: path, Err: err}
	}
	defer f.Close()

	var items []map[string]any
	if err := json.NewDecoder(f).Decode(&items); err != nil {
		return nil, &domain.FileError{Path: path, Err: fmt.Errorf("decode corpus: %w", err)}
	}

	records := make([]domain.RawRecord, 0, len(items))
	dropped := 0
	for _, item := range items {
		rec := make(domain.RawRecord, len(item))
		for key, value := range item {
			text, ok := value.(string)
			if !ok {
				dropped++
				continue
			}
			rec[key] = r.cleaner.Clean(key, text)
		}
		records = append(records, rec)
	}

	r.debug("corpus read", "path", path, "records", len(records), "dropped_values", dropped)
	return records, nil
}

func (r *JSONReader) debug(msg string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}
