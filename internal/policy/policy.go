// Package policy holds the versioned table of risk weights and rule
// thresholds that drive the decision pipeline.
package policy

import (
	_ "embed"
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"docreview/internal/domain"
)

//go:embed default.yaml
var defaultYAML []byte

type Policy struct {
	Version string     `yaml:"version"`
	Risk    RiskModel  `yaml:"risk"`
	Rules   Thresholds `yaml:"rules"`
}

type RiskModel struct {
	Min         int          `yaml:"min"`
	Max         int          `yaml:"max"`
	High        KeywordSet   `yaml:"high"`
	Medium      KeywordSet   `yaml:"medium"`
	AmountTiers []AmountTier `yaml:"amount_tiers"`
	Sparsity    []Sparsity   `yaml:"sparsity"`
}

// KeywordSet scores min(distinct matches * weight, cap).
type KeywordSet struct {
	Weight int      `yaml:"weight"`
	Cap    int      `yaml:"cap"`
	Terms  []string `yaml:"terms"`
}

// AmountTier awards points when the canonical amount is strictly above the bound.
type AmountTier struct {
	Above  float64 `yaml:"above"`
	Points int     `yaml:"points"`
}

// Sparsity awards points when exactly Fields fields were extracted.
type Sparsity struct {
	Fields int `yaml:"fields"`
	Points int `yaml:"points"`
}

type Thresholds struct {
	HighRiskScore        int                              `yaml:"high_risk_score"`
	LargeAmount          float64                          `yaml:"large_amount"`
	ModerateRiskMin      int                              `yaml:"moderate_risk_min"`
	ModerateRiskMax      int                              `yaml:"moderate_risk_max"`
	ModerateAmount       float64                          `yaml:"moderate_amount"`
	AutoApproveMaxRisk   int                              `yaml:"auto_approve_max_risk"`
	AutoApproveMaxAmount float64                          `yaml:"auto_approve_max_amount"`
	SmallAmount          float64                          `yaml:"small_amount"`
	MinFields            int                              `yaml:"min_fields"`
	MinFieldsSmall       int                              `yaml:"min_fields_small"`
	CriticalFields       map[domain.DocumentType][]string `yaml:"critical_fields"`
}

// Default returns the embedded policy. It panics only if the embedded table
// is malformed, which the package tests rule out.
func Default() *Policy {
	p, err := Parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return p
}

// Load reads a policy file; an empty path yields the embedded default.
func Load(path string) (*Policy, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read policy %s", path)
	}
	return Parse(data)
}

func Parse(data []byte) (*Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "parse policy")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	// Tiers are consulted highest first.
	sort.SliceStable(p.Risk.AmountTiers, func(i, j int) bool {
		return p.Risk.AmountTiers[i].Above > p.Risk.AmountTiers[j].Above
	})
	return &p, nil
}

func (p *Policy) Validate() error {
	if p.Version == "" {
		return errors.New("policy: version is required")
	}
	if p.Risk.Max <= p.Risk.Min {
		return errors.Newf("policy: risk bounds [%d,%d] are inverted", p.Risk.Min, p.Risk.Max)
	}
	if len(p.Risk.High.Terms) == 0 || len(p.Risk.Medium.Terms) == 0 {
		return errors.New("policy: keyword lists must not be empty")
	}
	r := p.Rules
	if r.ModerateRiskMin > r.ModerateRiskMax {
		return errors.Newf("policy: moderate risk band [%d,%d) is inverted", r.ModerateRiskMin, r.ModerateRiskMax)
	}
	if len(r.CriticalFields) == 0 {
		return errors.New("policy: critical fields are required")
	}
	return nil
}

// Types lists the document types the policy knows, sorted.
func (p *Policy) Types() []domain.DocumentType {
	out := make([]domain.DocumentType, 0, len(p.Rules.CriticalFields))
	for t := range p.Rules.CriticalFields {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Supports reports whether t has a critical field set.
func (p *Policy) Supports(t domain.DocumentType) bool {
	_, ok := p.Rules.CriticalFields[t]
	return ok
}
