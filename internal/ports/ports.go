package ports

import (
	"context"

	"docreview/internal/domain"
)

// TextSource produces raw text for a stored file (OCR, HTML flattening).
// Failures are domain.ErrExtraction.
type TextSource interface {
	ProduceText(ctx context.Context, file string) (string, error)
}

// Identity resolves the authenticated actor of a request, if any.
type Identity interface {
	CurrentActor(ctx context.Context) (domain.Actor, bool)
}

// Reviews is the decision pipeline as seen by transports and workers.
type Reviews interface {
	Submit(ctx context.Context, actor domain.Actor, typ domain.DocumentType, text string) (domain.Document, error)
	Get(ctx context.Context, id string) (domain.Document, error)
	ProcessDocument(ctx context.Context, actor domain.Actor, id string) (domain.Decision, error)
	ApproveDocument(ctx context.Context, actor domain.Actor, id string, comments string) (Outcome, error)
	RejectDocument(ctx context.Context, actor domain.Actor, id string, reason string) (Outcome, error)
	PendingReviews(ctx context.Context) ([]domain.Document, error)
	Statistics(ctx context.Context) (domain.Statistics, error)
	AuditLog(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

// Outcome reports a manual transition.
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
