package source

import (
	"fmt"
	"time"

	"BankruptcySentiment/internal/domain"
)

// Raw record keys shared by every corpus.
const (
	FieldTitle       = "title"
	FieldPublishTime = "publish_time"
	FieldBody        = "body"
	FieldDescription = "description"
)

// DateParser converts a raw publish_time string into a calendar date.
type DateParser func(raw string) (time.Time, error)

// Variant captures everything that differs between corpora: where the body
// lives and how the publish time is written.
type Variant struct {
	Source    domain.Source
	BodyField string
	ParseDate DateParser
}

// Registry keeps the variant strategy of every known source.
type Registry struct {
	variants map[domain.Source]Variant
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{variants: map[domain.Source]Variant{}}
}

// DefaultRegistry returns the registry for the three supported outlets.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Variant{Source: domain.SourceA, BodyField: FieldDescription, ParseDate: ParseISODate})
	r.Register(Variant{Source: domain.SourceB, BodyField: FieldBody, ParseDate: ParseAbbreviatedDate})
	r.Register(Variant{Source: domain.SourceC, BodyField: FieldBody, ParseDate: ParseLongDate})
	return r
}

// Register adds or replaces a variant.
func (r *Registry) Register(v Variant) {
	if r.variants == nil {
		r.variants = map[domain.Source]Variant{}
	}
	r.variants[v.Source] = v
}

// Resolve returns the variant for a source or an error if it is absent.
func (r *Registry) Resolve(src domain.Source) (Variant, error) {
	if v, ok := r.variants[src]; ok {
		return v, nil
	}
	return Variant{}, fmt.Errorf("source %s is not registered", src)
}
