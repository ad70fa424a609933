package source

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"BankruptcySentiment/internal/domain"
)

const isoLayout = "2006-01-02"

var (
	// "Nov 20, 2021, 6:00AM ET", "Sat., Nov. 20, 2021" or "Nov. 2, 2021".
	abbreviatedExpr = regexp.MustCompile(
		`^(?:[A-Za-z]{3,9}\.?,\s+)?([A-Za-z]{3,9})\.?\s+(\d{1,2}),\s+(\d{4})` +
			`(?:,?\s*\d{1,2}:\d{2}\s*[AaPp]\.?[Mm]\.?(?:\s+[A-Z]{2,4})?)?\s*$`)

	// "Tuesday, November 17, 2020", anything after the year is ignored.
	longExpr = regexp.MustCompile(`^([A-Za-z]+),\s+([A-Za-z]+)\s+(\d{1,2}),\s+(\d{4})(?:\D.*)?$`)
)

// ParseISODate reads the leading YYYY-MM-DD of an ISO timestamp.
func ParseISODate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) < len(isoLayout) {
		return time.Time{}, malformed(raw, "YYYY-MM-DD")
	}
	t, err := time.Parse(isoLayout, raw[:len(isoLayout)])
	if err != nil {
		return time.Time{}, malformed(raw, "YYYY-MM-DD")
	}
	return domain.TruncateDay(t), nil
}

// ParseAbbreviatedDate reads "Mon D, YYYY, h:mmXM ET" style strings with an
// optional leading weekday.
func ParseAbbreviatedDate(raw string) (time.Time, error) {
	m := abbreviatedExpr.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return time.Time{}, malformed(raw, "Mon D, YYYY, h:mmXM ET")
	}
	return buildDate(raw, m[1], m[2], m[3], "Mon D, YYYY, h:mmXM ET")
}

// ParseLongDate reads "Weekday, Month D, YYYY" strings.
func ParseLongDate(raw string) (time.Time, error) {
	m := longExpr.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return time.Time{}, malformed(raw, "Weekday, Month D, YYYY")
	}
	return buildDate(raw, m[2], m[3], m[4], "Weekday, Month D, YYYY")
}

func buildDate(raw, monthText, dayText, yearText, layout string) (time.Time, error) {
	month, ok := monthFromName(monthText)
	if !ok {
		return time.Time{}, malformed(raw, layout)
	}
	day, err := strconv.Atoi(dayText)
	if err != nil {
		return time.Time{}, malformed(raw, layout)
	}
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return time.Time{}, malformed(raw, layout)
	}

	t := domain.Date(year, month, day)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, malformed(raw, layout)
	}
	return t, nil
}

// monthFromName accepts three-letter abbreviations, "Sept" and full names.
func monthFromName(name string) (time.Month, bool) {
	lower := strings.ToLower(name)
	if lower == "sept" {
		return time.September, true
	}
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if lower == full || lower == full[:3] {
			return m, true
		}
	}
	return 0, false
}

func malformed(raw, layout string) error {
	return fmt.Errorf("%w: %q does not match %s", domain.ErrMalformedDate, raw, layout)
}
