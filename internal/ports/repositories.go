package ports

import (
	"context"

	"docreview/internal/domain"
)

// DocumentRepository is the persistence collaborator and sole source of truth
// for documents. Update is a compare-and-swap on Version: a stale
// expectedVersion fails with domain.ErrConflict and writes nothing.
type DocumentRepository interface {
	Create(ctx context.Context, doc domain.Document) (domain.Document, error)
	GetByID(ctx context.Context, id string) (domain.Document, error)
	Update(ctx context.Context, id string, expectedVersion int64, patch domain.DocumentPatch) (domain.Document, error)
	GetByStatus(ctx context.Context, status domain.Status) ([]domain.Document, error)
	Statistics(ctx context.Context) (domain.Statistics, error)
}

// AuditRepository is append-only. Stores evict their oldest entries once
// the retention cap is exceeded.
type AuditRepository interface {
	Append(ctx context.Context, entry domain.AuditEntry) error
	List(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}
