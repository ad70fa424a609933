// Package relevance selects business-related articles by vocabulary.
//
// Matching is a case-insensitive substring test, not a word match: "tax"
// matches "taxi". Results stay comparable with earlier runs over the same
// corpora.
package relevance

import (
	"strings"

	"BankruptcySentiment/internal/domain"
)

// Document is anything with a title and a body to match against.
type Document interface {
	TitleText() string
	BodyText() string
}

// Vocabulary is a set of lowercase terms.
type Vocabulary []string

// StandardVocabulary is used for outlets whose corpora carry full bodies.
var StandardVocabulary = Vocabulary{
	"business", "company", "money", "bank", "tax", "income", "sales", "employees",
}

// ExtendedVocabulary adds retail terms for the description-only corpus.
var ExtendedVocabulary = append(append(Vocabulary{}, StandardVocabulary...), "shop", "market")

// ForSource returns the default vocabulary of a source.
func ForSource(src domain.Source) Vocabulary {
	if src == domain.SourceA {
		return ExtendedVocabulary
	}
	return StandardVocabulary
}

// NewVocabulary lowercases and de-duplicates terms, dropping blanks.
func NewVocabulary(terms ...string) Vocabulary {
	seen := make(map[string]struct{}, len(terms))
	out := make(Vocabulary, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}
	return out
}

// Matches reports whether text contains any term.
func (v Vocabulary) Matches(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range v {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// Filter returns, in input order, the documents whose title or body contains
// at least one vocabulary term.
func Filter[T Document](docs []T, vocab Vocabulary) []T {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		if vocab.Matches(doc.TitleText()) || vocab.Matches(doc.BodyText()) {
			out = append(out, doc)
		}
	}
	return out
}
