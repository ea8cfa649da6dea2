package rules

import (
	"docreview/internal/domain"
)

const DefaultReason = "Document requires manual review"

// Default is the decision that stands when no rule matches.
func Default() domain.Decision {
	return domain.Decision{
		Status:       domain.StatusNeedsReview,
		AutoApproved: false,
		Reason:       DefaultReason,
		AppliedRules: []string{},
	}
}

type Engine struct {
	rules []Rule
}

// NewEngine evaluates rules in the order given.
func NewEngine(rules ...Rule) *Engine {
	return &Engine{rules: append([]Rule(nil), rules...)}
}

// Rules returns the rule names in evaluation order.
func (e *Engine) Rules() []string {
	out := make([]string, len(e.rules))
	for i, r := range e.rules {
		out[i] = r.Name()
	}
	return out
}

// Evaluate folds the rules over doc. Each match replaces the running decision
// and is appended to AppliedRules; a match that lands on needs-review stops
// the fold so no later rule can turn it into an approval.
func (e *Engine) Evaluate(doc domain.Document) domain.Decision {
	snapshot := doc.Clone()
	d := Default()
	for _, r := range e.rules {
		res := r.Evaluate(snapshot)
		if !res.IsMatch() {
			continue
		}
		d.Status = res.Status()
		d.AutoApproved = res.AutoApproved()
		d.Reason = res.Reason()
		d.AppliedRules = append(d.AppliedRules, r.Name())
		if res.Status() == domain.StatusNeedsReview {
			break
		}
	}
	return d
}
