// Package memory provides map-backed stores for local runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"docreview/internal/domain"
)

type Documents struct {
	mu    sync.Mutex
	docs  map[string]domain.Document
	order map[string]int64
	seq   int64
	now   func() time.Time
}

func NewDocuments() *Documents {
	return &Documents{docs: make(map[string]domain.Document), order: make(map[string]int64), now: time.Now}
}

func (s *Documents) Create(ctx context.Context, doc domain.Document) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if _, exists := s.docs[doc.ID]; exists {
		return domain.Document{}, domain.Conflict(doc.ID, 0)
	}
	if doc.Status == "" {
		doc.Status = domain.StatusPending
	}
	now := s.now().UTC()
	doc.Version = 1
	doc.CreatedAt, doc.UpdatedAt = now, now
	s.seq++
	s.order[doc.ID] = s.seq
	s.docs[doc.ID] = doc.Clone()
	return doc.Clone(), nil
}

func (s *Documents) GetByID(ctx context.Context, id string) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return domain.Document{}, domain.NotFoundf("document %s not found", id)
	}
	return doc.Clone(), nil
}

func (s *Documents) Update(ctx context.Context, id string, expectedVersion int64, patch domain.DocumentPatch) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return domain.Document{}, domain.NotFoundf("document %s not found", id)
	}
	if doc.Version != expectedVersion {
		return domain.Document{}, domain.Conflict(id, expectedVersion)
	}
	patch.Apply(&doc)
	doc.Version++
	doc.UpdatedAt = s.now().UTC()
	s.docs[id] = doc.Clone()
	return doc.Clone(), nil
}

func (s *Documents) GetByStatus(ctx context.Context, status domain.Status) ([]domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Document
	for _, d := range s.docs {
		if d.Status == status {
			out = append(out, d.Clone())
		}
	}
	s.sortByCreated(out)
	return out, nil
}

func (s *Documents) Statistics(ctx context.Context) (domain.Statistics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]domain.Document, 0, len(s.docs))
	for _, d := range s.docs {
		all = append(all, d)
	}
	return domain.Summarize(all), nil
}

// ClaimNextPending moves the oldest pending document to processing.
func (s *Documents) ClaimNextPending(ctx context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var pending []domain.Document
	for _, d := range s.docs {
		if d.Status == domain.StatusPending {
			pending = append(pending, d)
		}
	}
	if len(pending) == 0 {
		return "", false, nil
	}
	s.sortByCreated(pending)
	doc := pending[0]
	doc.Status = domain.StatusProcessing
	doc.Version++
	doc.UpdatedAt = s.now().UTC()
	s.docs[doc.ID] = doc
	return doc.ID, true, nil
}

// sortByCreated orders by insertion, which also breaks CreatedAt ties.
func (s *Documents) sortByCreated(docs []domain.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return s.order[docs[i].ID] < s.order[docs[j].ID]
	})
}
