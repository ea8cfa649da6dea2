// Package metrics exposes Prometheus instruments for the decision pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Decisions counts rule-engine outcomes.
	// Labels: status (approved, needs-review)
	Decisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docreview",
			Subsystem: "pipeline",
			Name:      "decisions_total",
			Help:      "Total number of pipeline decisions by resulting status",
		},
		[]string{"status"},
	)

	// RuleMatches counts how often each rule contributed to a decision.
	RuleMatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docreview",
			Subsystem: "pipeline",
			Name:      "rule_matches_total",
			Help:      "Total number of rule matches by rule name",
		},
		[]string{"rule"},
	)

	RiskScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "docreview",
			Subsystem: "pipeline",
			Name:      "risk_score",
			Help:      "Distribution of computed risk scores",
			Buckets:   prometheus.LinearBuckets(0, 1, 11),
		},
	)

	// Errors counts boundary failures.
	// Labels: kind (not_found, validation, extraction, persistence, ...)
	Errors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docreview",
			Subsystem: "pipeline",
			Name:      "errors_total",
			Help:      "Total number of pipeline errors by kind",
		},
		[]string{"kind"},
	)

	Duration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "docreview",
			Subsystem: "pipeline",
			Name:      "duration_seconds",
			Help:      "Duration of document processing in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// ManualActions counts reviewer transitions.
	// Labels: action (manual_approve, manual_reject)
	ManualActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docreview",
			Subsystem: "reviews",
			Name:      "manual_actions_total",
			Help:      "Total number of manual review actions",
		},
		[]string{"action"},
	)
)
