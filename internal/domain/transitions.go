package domain

import "math"

// edges lists every permitted status move. Manual approval and rejection may
// leave any non-terminal state; the rule engine only leaves processing.
var edges = map[Status][]Status{
	StatusPending:     {StatusProcessing, StatusApproved, StatusRejected},
	StatusProcessing:  {StatusNeedsReview, StatusApproved, StatusRejected},
	StatusNeedsReview: {StatusApproved, StatusRejected},
}

// CanTransition reports whether a document may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range edges[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CheckTransition returns an InvalidTransition error for forbidden moves.
func CheckTransition(from, to Status) error {
	if !CanTransition(from, to) {
		return InvalidTransition(from, to)
	}
	return nil
}

// Summarize folds documents into the statistics snapshot.
func Summarize(docs []Document) Statistics {
	var st Statistics
	sum := 0
	for _, d := range docs {
		st.Total++
		sum += d.RiskScore
		if d.AutoApproved {
			st.AutoApproved++
		}
		if d.ReviewedBy != nil {
			st.ManuallyReviewed++
		}
		switch d.Status {
		case StatusNeedsReview:
			st.Pending++
		case StatusApproved:
			st.Approved++
		case StatusRejected:
			st.Rejected++
		}
	}
	if st.Total > 0 {
		st.AverageRiskScore = RoundScore(float64(sum) / float64(st.Total))
	}
	return st
}

// RoundScore rounds to two decimal places.
func RoundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
