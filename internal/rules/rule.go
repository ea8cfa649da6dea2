// Package rules turns an extracted document into an approval decision by
// folding an ordered list of pure rules.
package rules

import (
	"docreview/internal/domain"
)

// Result is either NoMatch or a matched outcome. The zero value is NoMatch.
type Result struct {
	matched      bool
	status       domain.Status
	autoApproved bool
	reason       string
}

var NoMatch = Result{}

func Matched(status domain.Status, autoApproved bool, reason string) Result {
	return Result{matched: true, status: status, autoApproved: autoApproved, reason: reason}
}

func (r Result) IsMatch() bool { return r.matched }

func (r Result) Status() domain.Status { return r.status }

func (r Result) AutoApproved() bool { return r.autoApproved }

func (r Result) Reason() string { return r.reason }

// Rule is a stateless predicate over a document snapshot. Evaluating it twice
// on the same document must give the same Result.
type Rule interface {
	Name() string
	Evaluate(doc domain.Document) Result
}

// Func adapts a plain function into a Rule.
type Func struct {
	RuleName string
	Fn       func(domain.Document) Result
}

func (f Func) Name() string { return f.RuleName }

func (f Func) Evaluate(doc domain.Document) Result { return f.Fn(doc) }
