package bankruptcy

import (
	"fmt"
	"strings"

	"BankruptcySentiment/internal/domain"
)

// Column names of the statistics extract.
const (
	ColumnGeo             = "GEO"
	ColumnCharacteristics = "Business characteristics"
	ColumnValue           = "VALUE"

	// lengthOfTimeMarker locates the horizon column, whose full name differs
	// between extracts.
	lengthOfTimeMarker = "Length of time"
)

// Columns holds the header positions the loader reads.
type Columns struct {
	Geo             int
	Characteristics int
	Value           int
	Horizon         int
	HorizonName     string
	// Reason is -1 unless the header carries more than one length-of-time
	// column, in which case the first one filters rows on "bankruptcy".
	Reason     int
	ReasonName string
}

// HasReason reports whether rows must be filtered on the reason column.
func (c Columns) HasReason() bool {
	return c.Reason >= 0
}

// width is the minimum row length that covers every used column.
func (c Columns) width() int {
	w := 0
	for _, i := range []int{c.Geo, c.Characteristics, c.Value, c.Horizon, c.Reason} {
		if i+1 > w {
			w = i + 1
		}
	}
	return w
}

// DetectColumns resolves the used columns from a header row. The
// length-of-time column is found by substring: the last match is the horizon
// field and, when there are several, the first match is the reason filter.
// Columns without the marker are never the reason filter: for
// ["Reason", "Length of time A", "Length of time B"] the reason column is
// "Length of time A", not "Reason".
func DetectColumns(header []string) (Columns, error) {
	cols := Columns{Geo: -1, Characteristics: -1, Value: -1, Horizon: -1, Reason: -1}

	var matches []int
	for i, name := range header {
		name = cleanName(name)
		switch name {
		case ColumnGeo:
			cols.Geo = i
		case ColumnCharacteristics:
			cols.Characteristics = i
		case ColumnValue:
			cols.Value = i
		}
		if strings.Contains(name, lengthOfTimeMarker) {
			matches = append(matches, i)
		}
	}

	required := []struct {
		name string
		idx  int
	}{
		{ColumnGeo, cols.Geo},
		{ColumnCharacteristics, cols.Characteristics},
		{ColumnValue, cols.Value},
	}
	for _, r := range required {
		if r.idx < 0 {
			return Columns{}, fmt.Errorf("%w: %q", domain.ErrNoMatchingColumn, r.name)
		}
	}
	if len(matches) == 0 {
		return Columns{}, fmt.Errorf("%w: no column contains %q", domain.ErrNoMatchingColumn, lengthOfTimeMarker)
	}

	cols.Horizon = matches[len(matches)-1]
	cols.HorizonName = cleanName(header[cols.Horizon])
	if len(matches) > 1 {
		cols.Reason = matches[0]
		cols.ReasonName = cleanName(header[cols.Reason])
	}
	return cols, nil
}

func cleanName(name string) string {
	return strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
}
