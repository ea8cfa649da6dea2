package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docreview/internal/domain"
	"docreview/internal/policy"
)

func engine() *Engine { return NewDefaultEngine(policy.Default()) }

func invoice(score int, fields map[string]string) domain.Document {
	return domain.Document{ID: "doc-1", Type: domain.TypeInvoice, RiskScore: score, ExtractedFields: fields}
}

func completeInvoice(amount string) map[string]string {
	return map[string]string{"Invoice Number": "A1", "Date": "Jan 1, 2024", "Amount": amount}
}

func TestRuleOrder(t *testing.T) {
	assert.Equal(t, []string{
		"High Risk Review",
		"Large Amount Review",
		"Missing Fields Review",
		"Moderate Risk Review",
		"Auto Approve Simple Documents",
	}, engine().Rules())
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name    string
		doc     domain.Document
		status  domain.Status
		auto    bool
		applied []string
	}{
		{"high risk wins regardless of fields", invoice(7, completeInvoice("$10")),
			domain.StatusNeedsReview, false, []string{HighRiskReview}},
		{"high risk short-circuits large amount", invoice(9, completeInvoice("$50,000")),
			domain.StatusNeedsReview, false, []string{HighRiskReview}},
		{"large amount at threshold", invoice(0, completeInvoice("$10,000")),
			domain.StatusNeedsReview, false, []string{LargeAmountReview}},
		{"missing fields", invoice(0, map[string]string{"Amount": "$100", "Email": "a@b.c"}),
			domain.StatusNeedsReview, false, []string{MissingFieldsReview}},
		{"moderate risk with amount", invoice(4, completeInvoice("$5,000")),
			domain.StatusNeedsReview, false, []string{ModerateRiskReview}},
		{"moderate risk small amount falls through to default", invoice(5, completeInvoice("$4,999")),
			domain.StatusNeedsReview, false, []string{}},
		{"simple document auto-approved", invoice(3, completeInvoice("$4,999.99")),
			domain.StatusApproved, true, []string{AutoApproveSimpleDoc}},
		{"score above three not auto-approved", invoice(4, completeInvoice("$100")),
			domain.StatusNeedsReview, false, []string{}},
	}
	e := engine()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := e.Evaluate(tc.doc)
			assert.Equal(t, tc.status, d.Status)
			assert.Equal(t, tc.auto, d.AutoApproved)
			assert.Equal(t, tc.applied, d.AppliedRules)
			assert.NotEmpty(t, d.Reason)
		})
	}
}

func TestDefaultDecision(t *testing.T) {
	d := engine().Evaluate(invoice(5, completeInvoice("$100")))
	assert.Equal(t, Default(), d)
	assert.Equal(t, "Document requires manual review", d.Reason)
}

func TestEmptyFieldsAlwaysReview(t *testing.T) {
	for _, typ := range []domain.DocumentType{domain.TypeInvoice, domain.TypeContract} {
		d := engine().Evaluate(domain.Document{Type: typ, RiskScore: 0, ExtractedFields: map[string]string{}})
		assert.Equal(t, domain.StatusNeedsReview, d.Status)
		assert.Equal(t, []string{MissingFieldsReview}, d.AppliedRules)
	}
}

func TestContractPartiesCheckedLiterally(t *testing.T) {
	doc := domain.Document{Type: domain.TypeContract, RiskScore: 0, ExtractedFields: map[string]string{
		"Contract Number": "C-1",
		"Party 1":         "John Smith",
		"Party 2":         "Jane Doe",
		"Effective Date":  "Jan 1, 2024",
		"Value":           "$100",
	}}
	d := engine().Evaluate(doc)
	assert.Equal(t, domain.StatusNeedsReview, d.Status)
	assert.Equal(t, "Missing critical fields: Parties", d.Reason)

	doc.ExtractedFields["Parties"] = "John Smith, Jane Doe"
	d = engine().Evaluate(doc)
	assert.Equal(t, domain.StatusApproved, d.Status)
	assert.True(t, d.AutoApproved)
}

func TestAutoApproveFieldCountBranches(t *testing.T) {
	th := policy.Default().Rules
	th.CriticalFields = map[domain.DocumentType][]string{"memo": {}}
	e := NewEngine(Builtin(th)...)

	one := domain.Document{Type: "memo", ExtractedFields: map[string]string{"Amount": "$999"}}
	assert.Equal(t, domain.StatusApproved, e.Evaluate(one).Status, "single field passes under the small amount")

	one.ExtractedFields["Amount"] = "$1,000"
	assert.Equal(t, domain.StatusNeedsReview, e.Evaluate(one).Status, "single field fails at the small amount")

	none := domain.Document{Type: "memo", ExtractedFields: map[string]string{}}
	assert.Equal(t, domain.StatusNeedsReview, e.Evaluate(none).Status)
}

func TestLaterApprovalNeverOverridesReview(t *testing.T) {
	approveAll := Func{"Approve Everything", func(domain.Document) Result {
		return Matched(domain.StatusApproved, true, "ok")
	}}
	flag := Func{"Flag", func(domain.Document) Result { return Matched(domain.StatusNeedsReview, false, "flagged") }}

	d := NewEngine(approveAll, flag, approveAll).Evaluate(domain.Document{})
	assert.Equal(t, domain.StatusNeedsReview, d.Status)
	assert.Equal(t, []string{"Approve Everything", "Flag"}, d.AppliedRules)
	assert.Equal(t, "flagged", d.Reason)
}

func TestRulesArePure(t *testing.T) {
	doc := invoice(2, completeInvoice("$300"))
	for _, r := range Builtin(policy.Default().Rules) {
		first := r.Evaluate(doc)
		require.Equal(t, first, r.Evaluate(doc), r.Name())
	}
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	fields := completeInvoice("$300")
	doc := invoice(1, fields)
	mutate := Func{"Mutate", func(d domain.Document) Result {
		d.ExtractedFields["Amount"] = "$1"
		return NoMatch
	}}
	NewEngine(mutate).Evaluate(doc)
	assert.Equal(t, "$300", fields["Amount"])
}
