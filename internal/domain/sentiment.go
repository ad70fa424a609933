package domain

// DefaultPositiveThreshold is the body compound score above which an article
// counts as positive. Overridable through pipeline.positiveThreshold.
const DefaultPositiveThreshold = 0.20

// PolarityProfile is the sentiment decomposition of one text unit.
type PolarityProfile struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// Valid reports whether every component lies in its documented range.
func (p PolarityProfile) Valid() bool {
	in := func(v, lo, hi float64) bool { return v >= lo && v <= hi }
	return in(p.Negative, 0, 1) && in(p.Neutral, 0, 1) && in(p.Positive, 0, 1) && in(p.Compound, -1, 1)
}

// ScoredArticle pairs an article with the profiles of its title and body.
type ScoredArticle struct {
	Article ArticleRecord
	Title   PolarityProfile
	Body    PolarityProfile
}
