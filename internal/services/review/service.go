// Package review runs the document decision pipeline: extraction, risk
// scoring, rule evaluation and audit, plus the manual review transitions.
package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"docreview/internal/audit"
	"docreview/internal/domain"
	"docreview/internal/extract"
	"docreview/internal/logging"
	"docreview/internal/metrics"
	"docreview/internal/policy"
	"docreview/internal/ports"
	"docreview/internal/risk"
	"docreview/internal/rules"
)

type FieldExtractor interface {
	Extract(text string, t domain.DocumentType) map[string]string
}

type RiskScorer interface {
	Explain(text string, fields map[string]string) risk.Breakdown
}

type DecisionEngine interface {
	Evaluate(doc domain.Document) domain.Decision
}

type Service struct {
	docs      ports.DocumentRepository
	auditLog  ports.AuditRepository
	text      ports.TextSource
	policy    *policy.Policy
	recorder  *audit.Recorder
	extractor FieldExtractor
	scorer    RiskScorer
	engine    DecisionEngine
	log       *zap.Logger
	now       func() time.Time
}

type Option func(*Service)

func WithLogger(l *zap.Logger) Option { return func(s *Service) { s.log = logging.OrNop(l) } }

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func WithEngine(e DecisionEngine) Option { return func(s *Service) { s.engine = e } }

func WithExtractor(x FieldExtractor) Option { return func(s *Service) { s.extractor = x } }

func WithRecorder(r *audit.Recorder) Option { return func(s *Service) { s.recorder = r } }

// New wires the pipeline for a policy. text may be nil when files are never
// ingested.
func New(docs ports.DocumentRepository, auditLog ports.AuditRepository, text ports.TextSource, pol *policy.Policy, opts ...Option) *Service {
	if pol == nil {
		pol = policy.Default()
	}
	s := &Service{
		docs:      docs,
		auditLog:  auditLog,
		text:      text,
		policy:    pol,
		recorder:  audit.NewRecorder(auditLog),
		extractor: extract.New(),
		scorer:    risk.New(pol.Risk),
		engine:    rules.NewDefaultEngine(pol),
		log:       zap.NewNop(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

var _ ports.Reviews = (*Service)(nil)

// Submit stores a new pending document.
func (s *Service) Submit(ctx context.Context, actor domain.Actor, typ domain.DocumentType, text string) (domain.Document, error) {
	actor = actor.OrSystem()
	if !s.policy.Supports(typ) {
		return domain.Document{}, s.fail(ctx, actor, "submit", "",
			domain.Validationf("unsupported document type %q", typ))
	}
	if strings.TrimSpace(text) == "" {
		return domain.Document{}, s.fail(ctx, actor, "submit", "", domain.Validationf("document text is empty"))
	}
	doc, err := s.docs.Create(ctx, domain.Document{
		Type:    typ,
		RawText: text,
		Status:  domain.StatusPending,
	})
	if err != nil {
		return domain.Document{}, s.fail(ctx, actor, "submit", "", err)
	}
	if _, err := s.recorder.Log(ctx, actor, domain.ActionSubmit, doc.ID, fmt.Sprintf("Submitted %s", typ)); err != nil {
		return domain.Document{}, s.fail(ctx, actor, "submit", doc.ID, err)
	}
	s.log.Info("document submitted", zap.String("document_id", doc.ID), zap.String("type", string(typ)))
	return doc, nil
}

// Ingest produces text for file through the text source and submits it.
func (s *Service) Ingest(ctx context.Context, actor domain.Actor, typ domain.DocumentType, file string) (domain.Document, error) {
	actor = actor.OrSystem()
	if s.text == nil {
		return domain.Document{}, s.fail(ctx, actor, "ingest", "",
			domain.Extraction(errors.New("no text source configured"), "ingest %s", file))
	}
	text, err := s.text.ProduceText(ctx, file)
	if err != nil {
		return domain.Document{}, s.fail(ctx, actor, "ingest", "", err)
	}
	return s.Submit(ctx, actor, typ, text)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Document, error) {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return domain.Document{}, s.fail(ctx, domain.SystemActor, "get", id, err)
	}
	return doc, nil
}

// ProcessDocument extracts, scores and decides a pending document, then
// persists the outcome and audits it. The document write is a version
// compare-and-swap, so a concurrent run on the same document fails with
// domain.ErrConflict instead of overwriting.
func (s *Service) ProcessDocument(ctx context.Context, actor domain.Actor, id string) (domain.Decision, error) {
	actor = actor.OrSystem()
	start := s.now()
	d, err := s.process(ctx, actor, id)
	if err != nil {
		return domain.Decision{}, s.fail(ctx, actor, "process", id, err)
	}
	metrics.Duration.Observe(s.now().Sub(start).Seconds())
	return d, nil
}

func (s *Service) process(ctx context.Context, actor domain.Actor, id string) (domain.Decision, error) {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return domain.Decision{}, err
	}
	switch doc.Status {
	case domain.StatusPending:
		st := domain.StatusProcessing
		if doc, err = s.docs.Update(ctx, id, doc.Version, domain.DocumentPatch{Status: &st}); err != nil {
			return domain.Decision{}, err
		}
	case domain.StatusProcessing:
		// claimed by a worker
	default:
		return domain.Decision{}, domain.InvalidTransition(doc.Status, domain.StatusProcessing)
	}

	fields := s.extractor.Extract(doc.RawText, doc.Type)
	breakdown := s.scorer.Explain(doc.RawText, fields)
	doc.ExtractedFields = fields
	doc.RiskScore = breakdown.Score

	decision := s.engine.Evaluate(doc)
	if err := domain.CheckTransition(doc.Status, decision.Status); err != nil {
		return domain.Decision{}, err
	}

	score := breakdown.Score
	patch := domain.DocumentPatch{
		Status:          &decision.Status,
		AutoApproved:    &decision.AutoApproved,
		WorkflowReason:  &decision.Reason,
		ExtractedFields: fields,
		RiskScore:       &score,
		AppliedRules:    decision.AppliedRules,
	}
	if doc, err = s.docs.Update(ctx, id, doc.Version, patch); err != nil {
		return domain.Decision{}, err
	}
	if _, err := s.recorder.Record(ctx, doc, decision, actor); err != nil {
		return domain.Decision{}, err
	}

	metrics.Decisions.WithLabelValues(string(decision.Status)).Inc()
	metrics.RiskScores.Observe(float64(score))
	for _, r := range decision.AppliedRules {
		metrics.RuleMatches.WithLabelValues(r).Inc()
	}
	s.log.Info("document decided",
		zap.String("document_id", id),
		zap.String("status", string(decision.Status)),
		zap.Bool("auto_approved", decision.AutoApproved),
		zap.Int("risk_score", score),
		zap.Strings("applied_rules", decision.AppliedRules),
		zap.String("actor", actor.ID),
	)
	return decision, nil
}

// ApproveDocument records a reviewer's approval.
func (s *Service) ApproveDocument(ctx context.Context, actor domain.Actor, id string, comments string) (ports.Outcome, error) {
	actor = actor.OrSystem()
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return ports.Outcome{}, s.fail(ctx, actor, "approve", id, err)
	}
	if err := domain.CheckTransition(doc.Status, domain.StatusApproved); err != nil {
		return ports.Outcome{}, s.fail(ctx, actor, "approve", id, err)
	}

	details := fmt.Sprintf("Approved by %s", actor.Name)
	patch := s.manualPatch(actor, domain.StatusApproved, details)
	if c := strings.TrimSpace(comments); c != "" {
		patch.ReviewComments = &c
		details += ": " + c
	}
	if _, err := s.docs.Update(ctx, id, doc.Version, patch); err != nil {
		return ports.Outcome{}, s.fail(ctx, actor, "approve", id, err)
	}
	if _, err := s.recorder.Log(ctx, actor, domain.ActionManualApprove, id, details); err != nil {
		return ports.Outcome{}, s.fail(ctx, actor, "approve", id, err)
	}
	metrics.ManualActions.WithLabelValues(domain.ActionManualApprove).Inc()
	s.log.Info("document approved", zap.String("document_id", id), zap.String("reviewer", actor.ID))
	return ports.Outcome{Success: true, Message: "Document approved successfully"}, nil
}

// RejectDocument records a reviewer's rejection. A blank reason is a
// validation error and changes nothing.
func (s *Service) RejectDocument(ctx context.Context, actor domain.Actor, id string, reason string) (ports.Outcome, error) {
	actor = actor.OrSystem()
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return ports.Outcome{}, s.fail(ctx, actor, "reject", id, err)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ports.Outcome{}, s.fail(ctx, actor, "reject", id, domain.Validationf("rejection reason is required"))
	}
	if err := domain.CheckTransition(doc.Status, domain.StatusRejected); err != nil {
		return ports.Outcome{}, s.fail(ctx, actor, "reject", id, err)
	}

	patch := s.manualPatch(actor, domain.StatusRejected, "Rejected: "+reason)
	patch.RejectionReason = &reason
	if _, err := s.docs.Update(ctx, id, doc.Version, patch); err != nil {
		return ports.Outcome{}, s.fail(ctx, actor, "reject", id, err)
	}
	if _, err := s.recorder.Log(ctx, actor, domain.ActionManualReject, id, reason); err != nil {
		return ports.Outcome{}, s.fail(ctx, actor, "reject", id, err)
	}
	metrics.ManualActions.WithLabelValues(domain.ActionManualReject).Inc()
	s.log.Info("document rejected", zap.String("document_id", id), zap.String("reviewer", actor.ID))
	return ports.Outcome{Success: true, Message: "Document rejected"}, nil
}

func (s *Service) manualPatch(actor domain.Actor, status domain.Status, reason string) domain.DocumentPatch {
	now := s.now()
	auto := false
	reviewer := actor.ID
	return domain.DocumentPatch{
		Status:         &status,
		AutoApproved:   &auto,
		WorkflowReason: &reason,
		ReviewedBy:     &reviewer,
		ReviewedAt:     &now,
	}
}

func (s *Service) PendingReviews(ctx context.Context) ([]domain.Document, error) {
	docs, err := s.docs.GetByStatus(ctx, domain.StatusNeedsReview)
	if err != nil {
		return nil, s.fail(ctx, domain.SystemActor, "pending reviews", "", err)
	}
	return docs, nil
}

func (s *Service) Statistics(ctx context.Context) (domain.Statistics, error) {
	st, err := s.docs.Statistics(ctx)
	if err != nil {
		return domain.Statistics{}, s.fail(ctx, domain.SystemActor, "statistics", "", err)
	}
	return st, nil
}

func (s *Service) AuditLog(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	entries, err := s.auditLog.List(ctx, limit)
	if err != nil {
		return nil, s.fail(ctx, domain.SystemActor, "audit log", "", err)
	}
	return entries, nil
}

// fail logs err, writes a system_error audit entry and returns err unchanged.
func (s *Service) fail(ctx context.Context, actor domain.Actor, op, docID string, err error) error {
	kind := domain.Kind(err)
	metrics.Errors.WithLabelValues(kind).Inc()
	s.log.Error("pipeline error",
		zap.String("op", op),
		zap.String("document_id", docID),
		zap.String("kind", kind),
		zap.Error(err),
	)
	if _, aerr := s.recorder.Log(ctx, actor, domain.ActionSystemError, docID, op+": "+err.Error()); aerr != nil {
		s.log.Error("audit of pipeline error failed", zap.Error(aerr))
	}
	return err
}
