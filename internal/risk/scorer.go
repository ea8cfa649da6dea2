// Package risk scores a document from its text and extracted fields using the
// weights of a policy table.
package risk

import (
	"strings"

	"docreview/internal/domain"
	"docreview/internal/policy"
)

type Scorer struct {
	model policy.RiskModel
}

func New(model policy.RiskModel) *Scorer {
	return &Scorer{model: model}
}

// Breakdown records each additive contribution before clamping.
type Breakdown struct {
	HighKeywords   []string `json:"highKeywords"`
	MediumKeywords []string `json:"mediumKeywords"`
	High           int      `json:"high"`
	Medium         int      `json:"medium"`
	Amount         int      `json:"amount"`
	Sparsity       int      `json:"sparsity"`
	Score          int      `json:"score"`
}

// Score returns the clamped risk score for text and fields.
func (s *Scorer) Score(text string, fields map[string]string) int {
	return s.Explain(text, fields).Score
}

// Explain computes the score and reports how it was reached.
func (s *Scorer) Explain(text string, fields map[string]string) Breakdown {
	lower := strings.ToLower(text)
	var b Breakdown

	b.HighKeywords = present(lower, s.model.High.Terms)
	b.High = capped(len(b.HighKeywords)*s.model.High.Weight, s.model.High.Cap)

	b.MediumKeywords = present(lower, s.model.Medium.Terms)
	b.Medium = capped(len(b.MediumKeywords)*s.model.Medium.Weight, s.model.Medium.Cap)

	amount := domain.CanonicalAmount(fields)
	for _, tier := range s.model.AmountTiers {
		if amount > tier.Above {
			b.Amount = tier.Points
			break
		}
	}

	for _, sp := range s.model.Sparsity {
		if len(fields) == sp.Fields {
			b.Sparsity = sp.Points
			break
		}
	}

	b.Score = clamp(b.High+b.Medium+b.Amount+b.Sparsity, s.model.Min, s.model.Max)
	return b
}

// present lists the distinct terms found in lower, in table order.
func present(lower string, terms []string) []string {
	var out []string
	seen := make(map[string]bool, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		if strings.Contains(lower, t) {
			out = append(out, t)
		}
	}
	return out
}

func capped(v, limit int) int {
	if limit > 0 && v > limit {
		return limit
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
