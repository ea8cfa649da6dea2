package review

import (
	"docreview/internal/domain"
	"docreview/internal/risk"
)

// Preview is a dry run of the pipeline over raw text.
type Preview struct {
	Type     domain.DocumentType `json:"type"`
	Fields   map[string]string   `json:"fields"`
	Risk     risk.Breakdown      `json:"risk"`
	Decision domain.Decision     `json:"decision"`
}

// Evaluate runs extraction, scoring and the rules without touching any store.
func (s *Service) Evaluate(typ domain.DocumentType, text string) (Preview, error) {
	if !s.policy.Supports(typ) {
		return Preview{}, domain.Validationf("unsupported document type %q", typ)
	}
	fields := s.extractor.Extract(text, typ)
	b := s.scorer.Explain(text, fields)
	d := s.engine.Evaluate(domain.Document{
		Type:            typ,
		RawText:         text,
		ExtractedFields: fields,
		RiskScore:       b.Score,
		Status:          domain.StatusProcessing,
	})
	return Preview{Type: typ, Fields: fields, Risk: b, Decision: d}, nil
}
