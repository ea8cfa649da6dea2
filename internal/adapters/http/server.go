// Package httpadapter exposes the review pipeline over HTTP by implementing
// the generated api.StrictServerInterface.
package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"docreview/internal/api"
	"docreview/internal/audit"
	"docreview/internal/domain"
	"docreview/internal/logging"
	"docreview/internal/ports"
	"docreview/internal/workers/reviewrunner"
)

const (
	defaultProcessTimeout = 30 // seconds
	maxBodyBytes          = 10 << 20
)

// Reviews is the pipeline plus file ingestion.
type Reviews interface {
	ports.Reviews
	Ingest(ctx context.Context, actor domain.Actor, typ domain.DocumentType, file string) (domain.Document, error)
}

type Server struct {
	reviews  Reviews
	identity ports.Identity
	log      *zap.Logger
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(reviews Reviews, log *zap.Logger) *Server {
	return &Server{reviews: reviews, identity: HeaderIdentity{}, log: logging.OrNop(log).Named("http")}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(limitBody)
	r.Use(withActor)

	r.Handle("/metrics", promhttp.Handler())

	strict := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			s.writeError(w, domain.Validationf("invalid request body: %v", err))
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			s.writeError(w, err)
		},
	})
	api.HandlerWithOptions(strict, api.ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			s.writeError(w, domain.Validationf("%v", err))
		},
	})
	return r
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) actor(ctx context.Context) domain.Actor {
	a, _ := s.identity.CurrentActor(ctx)
	return a.OrSystem()
}

func (s *Server) GetHealthz(context.Context, api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (s *Server) SubmitDocument(ctx context.Context, req api.SubmitDocumentRequestObject) (api.SubmitDocumentResponseObject, error) {
	doc, err := s.reviews.Submit(ctx, s.actor(ctx), domain.DocumentType(req.Body.Type), req.Body.Text)
	if err != nil {
		return nil, err
	}
	return api.SubmitDocument201JSONResponse(toDocument(doc)), nil
}

func (s *Server) IngestDocument(ctx context.Context, req api.IngestDocumentRequestObject) (api.IngestDocumentResponseObject, error) {
	doc, err := s.reviews.Ingest(ctx, s.actor(ctx), domain.DocumentType(req.Body.Type), req.Body.File)
	if err != nil {
		return nil, err
	}
	return api.IngestDocument201JSONResponse(toDocument(doc)), nil
}

func (s *Server) GetDocument(ctx context.Context, req api.GetDocumentRequestObject) (api.GetDocumentResponseObject, error) {
	doc, err := s.reviews.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetDocument200JSONResponse(toDocument(doc)), nil
}

// ProcessDocument runs the pipeline synchronously with the processor the
// background workers use, bounded by the optional timeout query parameter.
func (s *Server) ProcessDocument(ctx context.Context, req api.ProcessDocumentRequestObject) (api.ProcessDocumentResponseObject, error) {
	secs := defaultProcessTimeout
	if t := req.Params.Timeout; t != nil && *t > 0 {
		secs = *t
	}
	ctx, cancel := context.WithTimeout(ctx, time.Duration(secs)*time.Second)
	defer cancel()

	decision, err := reviewrunner.ProcessInline(ctx, s.reviews, s.actor(ctx), req.Id)
	if err != nil {
		return nil, err
	}
	return api.ProcessDocument200JSONResponse(toDecision(decision)), nil
}

func (s *Server) ApproveDocument(ctx context.Context, req api.ApproveDocumentRequestObject) (api.ApproveDocumentResponseObject, error) {
	var comments string
	if req.Body != nil && req.Body.Comments != nil {
		comments = *req.Body.Comments
	}
	out, err := s.reviews.ApproveDocument(ctx, s.actor(ctx), req.Id, comments)
	if err != nil {
		return nil, err
	}
	return api.ApproveDocument200JSONResponse(toOutcome(out)), nil
}

func (s *Server) RejectDocument(ctx context.Context, req api.RejectDocumentRequestObject) (api.RejectDocumentResponseObject, error) {
	out, err := s.reviews.RejectDocument(ctx, s.actor(ctx), req.Id, req.Body.Reason)
	if err != nil {
		return nil, err
	}
	return api.RejectDocument200JSONResponse(toOutcome(out)), nil
}

func (s *Server) ListPendingReviews(ctx context.Context, _ api.ListPendingReviewsRequestObject) (api.ListPendingReviewsResponseObject, error) {
	docs, err := s.reviews.PendingReviews(ctx)
	if err != nil {
		return nil, err
	}
	return api.ListPendingReviews200JSONResponse(toDocuments(docs)), nil
}

func (s *Server) GetStatistics(ctx context.Context, _ api.GetStatisticsRequestObject) (api.GetStatisticsResponseObject, error) {
	st, err := s.reviews.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	return api.GetStatistics200JSONResponse(toStatistics(st)), nil
}

func (s *Server) ListAudit(ctx context.Context, req api.ListAuditRequestObject) (api.ListAuditResponseObject, error) {
	limit, err := auditLimit(req.Params.Limit)
	if err != nil {
		return nil, err
	}
	entries, err := s.reviews.AuditLog(ctx, limit)
	if err != nil {
		return nil, err
	}
	return api.ListAudit200JSONResponse(toAudit(entries)), nil
}

func (s *Server) ExportAuditCsv(ctx context.Context, req api.ExportAuditCsvRequestObject) (api.ExportAuditCsvResponseObject, error) {
	limit, err := auditLimit(req.Params.Limit)
	if err != nil {
		return nil, err
	}
	entries, err := s.reviews.AuditLog(ctx, limit)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := audit.WriteCSV(&buf, entries); err != nil {
		return nil, err
	}
	return api.ExportAuditCsv200TextcsvResponse{
		Body:          &buf,
		Headers:       api.ExportAuditCsv200ResponseHeaders{ContentDisposition: `attachment; filename="audit.csv"`},
		ContentLength: int64(buf.Len()),
	}, nil
}

// auditLimit treats an absent limit as all retained entries.
func auditLimit(limit *api.Limit) (int, error) {
	if limit == nil {
		return 0, nil
	}
	if *limit < 0 {
		return 0, domain.Validationf("limit must not be negative")
	}
	return *limit, nil
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(err error) int {
	switch domain.Kind(err) {
	case "not_found":
		return http.StatusNotFound
	case "invalid_transition", "conflict":
		return http.StatusConflict
	case "validation":
		return http.StatusBadRequest
	case "extraction":
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := StatusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err))
		msg = http.StatusText(code)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(api.Error{Error: domain.Kind(err), Message: msg}); err != nil {
		s.log.Warn("encode error response", zap.Error(err))
	}
}
