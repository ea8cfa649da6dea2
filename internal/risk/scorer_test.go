package risk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"docreview/internal/policy"
)

func newScorer() *Scorer { return New(policy.Default().Risk) }

func threeFields(extra map[string]string) map[string]string {
	f := map[string]string{"A": "1", "B": "2", "C": "3"}
	for k, v := range extra {
		f[k] = v
	}
	return f
}

func TestScoreContributions(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		fields map[string]string
		want   int
	}{
		{"clean document", "Thanks for your business", threeFields(nil), 0},
		{"one high keyword", "late PENALTY applies", threeFields(nil), 2},
		{"repeated keyword counts once", "penalty penalty penalty", threeFields(nil), 2},
		{"high keywords capped at six", "penalty termination breach liability lawsuit", threeFields(nil), 6},
		{"medium keywords", "urgent notice of renewal", threeFields(nil), 3},
		{"medium keywords capped at three", "amendment modification renewal extension warning", threeFields(nil), 3},
		{"substring match", "the agreement was voided", threeFields(nil), 2},
		{"amount above 10000", "", threeFields(map[string]string{"Amount": "$10,000.01"}), 2},
		{"amount exactly 10000", "", threeFields(map[string]string{"Amount": "$10,000"}), 1},
		{"amount above 5000", "", threeFields(map[string]string{"Amount": "$5,001"}), 1},
		{"amount exactly 5000", "", threeFields(map[string]string{"Amount": "$5,000"}), 0},
		{"value used without amount", "", threeFields(map[string]string{"Value": "$20,000"}), 2},
		{"amount preferred over value", "", threeFields(map[string]string{"Amount": "$100", "Value": "$20,000"}), 0},
		{"unparseable amount ignored", "", threeFields(map[string]string{"Amount": "lots"}), 0},
		{"no fields", "", map[string]string{}, 3},
		{"nil fields", "", nil, 3},
		{"one field", "", map[string]string{"Date": "x"}, 2},
		{"two fields", "", map[string]string{"Date": "x", "Email": "y"}, 1},
		{"everything clamps at ten", "penalty breach lawsuit dispute urgent notice warning",
			map[string]string{"Amount": "$99,999"}, 10},
	}
	s := newScorer()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.Score(tc.text, tc.fields))
		})
	}
}

func TestScoreIsIdempotentAndBounded(t *testing.T) {
	s := newScorer()
	texts := []string{"", "penalty", strings.Repeat("breach dispute urgent ", 50), "ordinary text"}
	fieldSets := []map[string]string{nil, {}, {"Amount": "$1"}, {"Amount": "$1,000,000", "Date": "d"}}
	for _, text := range texts {
		for _, f := range fieldSets {
			first := s.Score(text, f)
			assert.Equal(t, first, s.Score(text, f))
			assert.GreaterOrEqual(t, first, 0)
			assert.LessOrEqual(t, first, 10)
		}
	}
}

func TestExplain(t *testing.T) {
	b := newScorer().Explain("Overdue notice: breach of terms", map[string]string{"Amount": "$6,000"})
	assert.Equal(t, []string{"breach", "overdue"}, b.HighKeywords)
	assert.Equal(t, []string{"notice"}, b.MediumKeywords)
	assert.Equal(t, 4, b.High)
	assert.Equal(t, 1, b.Medium)
	assert.Equal(t, 1, b.Amount)
	assert.Equal(t, 2, b.Sparsity)
	assert.Equal(t, 8, b.Score)
}
