package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docreview/internal/domain"
)

func TestDefaultPolicy(t *testing.T) {
	p := Default()
	assert.Equal(t, "2024.1", p.Version)
	assert.Len(t, p.Risk.High.Terms, 10)
	assert.Len(t, p.Risk.Medium.Terms, 8)
	assert.Equal(t, 7, p.Rules.HighRiskScore)
	assert.Equal(t, []string{"Contract Number", "Parties", "Effective Date"}, p.Rules.CriticalFields[domain.TypeContract])
	assert.Equal(t, []domain.DocumentType{domain.TypeContract, domain.TypeInvoice}, p.Types())
	require.Len(t, p.Risk.AmountTiers, 2)
	assert.Equal(t, 10000.0, p.Risk.AmountTiers[0].Above)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	data := []byte(`version: "test"
risk:
  min: 0
  max: 10
  high: {weight: 2, cap: 6, terms: [penalty]}
  medium: {weight: 1, cap: 3, terms: [notice]}
  amount_tiers:
    - {above: 5000, points: 1}
    - {above: 10000, points: 2}
rules:
  moderate_risk_min: 4
  moderate_risk_max: 7
  critical_fields:
    receipt: [Amount]
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test", p.Version)
	assert.True(t, p.Supports("receipt"))
	assert.False(t, p.Supports(domain.TypeInvoice))
	assert.Equal(t, 10000.0, p.Risk.AmountTiers[0].Above, "tiers sorted highest first")
}

func TestValidateRejectsBadTables(t *testing.T) {
	cases := map[string]string{
		"missing version": `risk: {min: 0, max: 10}`,
		"inverted bounds": `version: x
risk: {min: 5, max: 1, high: {terms: [a]}, medium: {terms: [b]}}`,
		"empty keywords": `version: x
risk: {min: 0, max: 10, high: {terms: []}, medium: {terms: [b]}}`,
		"inverted band": `version: x
risk: {min: 0, max: 10, high: {terms: [a]}, medium: {terms: [b]}}
rules: {moderate_risk_min: 8, moderate_risk_max: 7, critical_fields: {invoice: [Amount]}}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
