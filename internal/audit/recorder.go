// Package audit turns pipeline actions into immutable audit entries and
// writes them through to the audit store.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"docreview/internal/domain"
	"docreview/internal/ports"
)

type Recorder struct {
	store ports.AuditRepository
	now   func() time.Time
	newID func() string
}

type Option func(*Recorder)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option { return func(r *Recorder) { r.now = now } }

// WithIDs overrides the identifier source.
func WithIDs(newID func() string) Option { return func(r *Recorder) { r.newID = newID } }

func NewRecorder(store ports.AuditRepository, opts ...Option) *Recorder {
	r := &Recorder{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// ActionFor maps a decision to its audit tag.
func ActionFor(d domain.Decision) string {
	if d.AutoApproved {
		return domain.ActionAutoApprove
	}
	return domain.ActionFlagForReview
}

// Record writes the audit entry for a rule-engine decision.
func (r *Recorder) Record(ctx context.Context, doc domain.Document, d domain.Decision, actor domain.Actor) (domain.AuditEntry, error) {
	return r.Log(ctx, actor, ActionFor(d), doc.ID, d.Reason)
}

// Log writes an arbitrary action. Storage failures are returned as
// domain.ErrPersistence.
func (r *Recorder) Log(ctx context.Context, actor domain.Actor, action, documentID, details string) (domain.AuditEntry, error) {
	actor = actor.OrSystem()
	entry := domain.AuditEntry{
		ID:         r.newID(),
		Timestamp:  r.now(),
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		Action:     action,
		DocumentID: documentID,
		Details:    details,
	}
	if err := r.store.Append(ctx, entry); err != nil {
		return domain.AuditEntry{}, domain.Persistence(err, "append audit entry %s", action)
	}
	return entry, nil
}
