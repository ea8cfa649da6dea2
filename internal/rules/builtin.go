package rules

import (
	"fmt"
	"strings"

	"docreview/internal/domain"
	"docreview/internal/policy"
)

const (
	HighRiskReview       = "High Risk Review"
	LargeAmountReview    = "Large Amount Review"
	MissingFieldsReview  = "Missing Fields Review"
	ModerateRiskReview   = "Moderate Risk Review"
	AutoApproveSimpleDoc = "Auto Approve Simple Documents"
)

// Builtin returns the standard rule set in precedence order.
func Builtin(t policy.Thresholds) []Rule {
	return []Rule{
		highRisk(t),
		largeAmount(t),
		missingFields(t),
		moderateRisk(t),
		autoApprove(t),
	}
}

// NewDefaultEngine wires the builtin rules for a policy.
func NewDefaultEngine(p *policy.Policy) *Engine {
	return NewEngine(Builtin(p.Rules)...)
}

func review(reason string) Result {
	return Matched(domain.StatusNeedsReview, false, reason)
}

func highRisk(t policy.Thresholds) Rule {
	return Func{HighRiskReview, func(d domain.Document) Result {
		if d.RiskScore >= t.HighRiskScore {
			return review(fmt.Sprintf("High risk score (%d) requires manual review", d.RiskScore))
		}
		return NoMatch
	}}
}

func largeAmount(t policy.Thresholds) Rule {
	return Func{LargeAmountReview, func(d domain.Document) Result {
		if amt := domain.CanonicalAmount(d.ExtractedFields); amt >= t.LargeAmount {
			return review(fmt.Sprintf("Large amount (%s) requires manual review", formatAmount(amt)))
		}
		return NoMatch
	}}
}

// missingFields checks the policy's critical field names literally against
// the extracted keys.
func missingFields(t policy.Thresholds) Rule {
	return Func{MissingFieldsReview, func(d domain.Document) Result {
		var missing []string
		for _, name := range t.CriticalFields[d.Type] {
			if _, ok := d.ExtractedFields[name]; !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			return review("Missing critical fields: " + strings.Join(missing, ", "))
		}
		return NoMatch
	}}
}

func moderateRisk(t policy.Thresholds) Rule {
	return Func{ModerateRiskReview, func(d domain.Document) Result {
		amt := domain.CanonicalAmount(d.ExtractedFields)
		if d.RiskScore >= t.ModerateRiskMin && d.RiskScore < t.ModerateRiskMax && amt >= t.ModerateAmount {
			return review(fmt.Sprintf("Moderate risk (%d) with amount %s requires review", d.RiskScore, formatAmount(amt)))
		}
		return NoMatch
	}}
}

func autoApprove(t policy.Thresholds) Rule {
	return Func{AutoApproveSimpleDoc, func(d domain.Document) Result {
		amt := domain.CanonicalAmount(d.ExtractedFields)
		n := len(d.ExtractedFields)
		enough := n >= t.MinFields || (amt < t.SmallAmount && n >= t.MinFieldsSmall)
		if d.RiskScore <= t.AutoApproveMaxRisk && amt < t.AutoApproveMaxAmount && enough {
			return Matched(domain.StatusApproved, true,
				fmt.Sprintf("Auto-approved: low risk (%d) and amount %s", d.RiskScore, formatAmount(amt)))
		}
		return NoMatch
	}}
}

func formatAmount(v float64) string {
	return "$" + strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
