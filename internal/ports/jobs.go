package ports

import "context"

// ClaimRepository hands pending documents to background workers.
type ClaimRepository interface {
	// ClaimNextPending atomically moves the oldest pending document to
	// processing and returns its id.
	ClaimNextPending(ctx context.Context) (docID string, found bool, err error)
}
