package corpus

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// tagExpr matches an opening, closing, comment or doctype tag. A bare "<" as
// in "costs<revenue" is text, not markup.
var tagExpr = regexp.MustCompile(`<[a-zA-Z/!][^<>]*>`)

// Cleaner strips HTML markup and entities left in scraped text fields.
type Cleaner struct {
	fields map[string]struct{}
}

// NewCleaner cleans only the named fields; other values pass through.
func NewCleaner(fields ...string) *Cleaner {
	c := &Cleaner{fields: make(map[string]struct{}, len(fields))}
	for _, f := range fields {
		c.fields[f] = struct{}{}
	}
	return c
}

// Clean returns the visible text of value when field is a cleaned field.
// Values without tags only get their entities decoded.
func (c *Cleaner) Clean(field, value string) string {
	if c == nil {
		return value
	}
	if _, ok := c.fields[field]; !ok {
		return value
	}
	if !tagExpr.MatchString(value) {
		if strings.Contains(value, "&") {
			return html.UnescapeString(value)
		}
		return value
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(value))
	if err != nil {
		return value
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}
