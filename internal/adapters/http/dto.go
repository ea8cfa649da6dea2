package httpadapter

import (
	"docreview/internal/api"
	"docreview/internal/domain"
	"docreview/internal/ports"
)

func toDocument(d domain.Document) api.Document {
	fields := d.ExtractedFields
	if fields == nil {
		fields = map[string]string{}
	}
	return api.Document{
		Id:              d.ID,
		Type:            string(d.Type),
		RawText:         d.RawText,
		ExtractedFields: fields,
		RiskScore:       d.RiskScore,
		Status:          api.DocumentStatus(d.Status),
		AutoApproved:    d.AutoApproved,
		WorkflowReason:  d.WorkflowReason,
		AppliedRules:    rules(d.AppliedRules),
		ReviewedBy:      d.ReviewedBy,
		ReviewedAt:      d.ReviewedAt,
		ReviewComments:  d.ReviewComments,
		RejectionReason: d.RejectionReason,
		Version:         d.Version,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func toDocuments(docs []domain.Document) []api.Document {
	out := make([]api.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocument(d))
	}
	return out
}

func toDecision(d domain.Decision) api.Decision {
	return api.Decision{
		Status:       api.DocumentStatus(d.Status),
		AutoApproved: d.AutoApproved,
		Reason:       d.Reason,
		AppliedRules: rules(d.AppliedRules),
	}
}

func toOutcome(o ports.Outcome) api.Outcome {
	return api.Outcome{Success: o.Success, Message: o.Message}
}

func toStatistics(st domain.Statistics) api.Statistics {
	return api.Statistics{
		Total:            st.Total,
		AutoApproved:     st.AutoApproved,
		ManuallyReviewed: st.ManuallyReviewed,
		Pending:          st.Pending,
		Approved:         st.Approved,
		Rejected:         st.Rejected,
		AverageRiskScore: st.AverageRiskScore,
	}
}

func toAudit(entries []domain.AuditEntry) []api.AuditEntry {
	out := make([]api.AuditEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.AuditEntry{
			Id:         e.ID,
			Timestamp:  e.Timestamp,
			ActorId:    e.ActorID,
			ActorName:  e.ActorName,
			Action:     e.Action,
			DocumentId: e.DocumentID,
			Details:    e.Details,
		})
	}
	return out
}

// rules keeps empty rule lists encoding as [] rather than null.
func rules(r []string) []string {
	if r == nil {
		return []string{}
	}
	return r
}
