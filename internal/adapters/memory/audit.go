package memory

import (
	"context"
	"sync"

	"docreview/internal/domain"
)

const DefaultRetention = 1000

// AuditLog is a fixed-capacity ring of the newest entries. Once full, each
// append overwrites the oldest entry.
type AuditLog struct {
	mu    sync.Mutex
	ring  []domain.AuditEntry
	head  int // index of the oldest entry
	count int
}

func NewAuditLog(capacity int) *AuditLog {
	if capacity <= 0 {
		capacity = DefaultRetention
	}
	return &AuditLog{ring: make([]domain.AuditEntry, capacity)}
}

func (l *AuditLog) Append(ctx context.Context, e domain.AuditEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.count < len(l.ring) {
		l.ring[(l.head+l.count)%len(l.ring)] = e
		l.count++
		return nil
	}
	l.ring[l.head] = e
	l.head = (l.head + 1) % len(l.ring)
	return nil
}

// List returns up to limit of the newest entries in append order; limit <= 0
// returns everything retained.
func (l *AuditLog) List(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := l.count
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.AuditEntry, 0, n)
	for i := l.count - n; i < l.count; i++ {
		out = append(out, l.ring[(l.head+i)%len(l.ring)])
	}
	return out, nil
}

func (l *AuditLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

func (l *AuditLog) Cap() int { return len(l.ring) }
