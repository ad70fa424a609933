// Package lexicon is an offline VADER-style polarity scorer: word valences,
// negation, intensity boosters and exclamation emphasis folded into a
// normalized compound score.
package lexicon

import (
	"context"
	"math"
	"strings"
	"unicode"

	"BankruptcySentiment/internal/domain"
	"BankruptcySentiment/internal/ports"
)

const (
	boostIncrement   = 0.293
	negationScalar   = -0.74
	negationWindow   = 3
	exclamationBoost = 0.292
	maxExclamations  = 4
	normalization    = 15.0
)

// Scorer is read-only after construction and safe for concurrent use.
type Scorer struct {
	valences map[string]float64
}

var _ ports.SentimentScorer = (*Scorer)(nil)

// New returns a scorer over the built-in lexicon.
func New() *Scorer {
	return &Scorer{valences: defaultValences}
}

// NewWithLexicon returns a scorer over a caller-supplied lexicon. Keys are
// lowercased; values are clamped to -4..+4.
func NewWithLexicon(valences map[string]float64) *Scorer {
	lex := make(map[string]float64, len(valences))
	for word, v := range valences {
		lex[strings.ToLower(word)] = math.Max(-4, math.Min(4, v))
	}
	return &Scorer{valences: lex}
}

// PolarityScores scores text. Empty text yields the zero profile.
func (s *Scorer) PolarityScores(ctx context.Context, text string) (domain.PolarityProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.PolarityProfile{}, err
	}

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return domain.PolarityProfile{}, nil
	}

	sentiments := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, ok := s.valences[tok]
		if !ok {
			continue
		}
		if i > 0 {
			if b, ok := boosters[tokens[i-1]]; ok {
				if v < 0 {
					b = -b
				}
				v += b
			}
		}
		if negatedAt(tokens, i) {
			v *= negationScalar
		}
		sentiments[i] = v
	}

	sum := 0.0
	for _, v := range sentiments {
		sum += v
	}
	if sum != 0 {
		emphasis := float64(min(strings.Count(text, "!"), maxExclamations)) * exclamationBoost
		if sum > 0 {
			sum += emphasis
		} else {
			sum -= emphasis
		}
	}

	return profile(sentiments, sum), nil
}

func profile(sentiments []float64, sum float64) domain.PolarityProfile {
	var pos, neg, neu float64
	for _, v := range sentiments {
		switch {
		case v > 0:
			pos += v + 1
		case v < 0:
			neg += -v + 1
		default:
			neu++
		}
	}

	total := pos + neg + neu
	compound := sum / math.Sqrt(sum*sum+normalization)
	return domain.PolarityProfile{
		Negative: neg / total,
		Neutral:  neu / total,
		Positive: pos / total,
		Compound: math.Max(-1, math.Min(1, compound)),
	}
}

func negatedAt(tokens []string, i int) bool {
	for j := max(0, i-negationWindow); j < i; j++ {
		if _, ok := negations[tokens[j]]; ok {
			return true
		}
	}
	return false
}

var apostrophes = strings.NewReplacer("'", "", "’", "")

// tokenize lowercases text and splits it on anything but letters, digits and
// apostrophes; apostrophes are then dropped so "don't" becomes "dont".
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '’'
	})
	tokens := fields[:0]
	for _, f := range fields {
		f = apostrophes.Replace(f)
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
