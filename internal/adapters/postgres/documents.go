package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"docreview/internal/domain"
)

const documentColumns = `id, type, raw_text, extracted_fields, risk_score, status, auto_approved,
    workflow_reason, applied_rules, reviewed_by, reviewed_at, review_comments, rejection_reason,
    version, created_at, updated_at`

func scanDocument(row pgx.Row) (domain.Document, error) {
	var (
		d       domain.Document
		typ     string
		status  string
		fields  map[string]string
		applied []string
	)
	err := row.Scan(&d.ID, &typ, &d.RawText, &fields, &d.RiskScore, &status, &d.AutoApproved,
		&d.WorkflowReason, &applied, &d.ReviewedBy, &d.ReviewedAt, &d.ReviewComments, &d.RejectionReason,
		&d.Version, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return domain.Document{}, err
	}
	d.Type = domain.DocumentType(typ)
	d.Status = domain.Status(status)
	if fields == nil {
		fields = map[string]string{}
	}
	d.ExtractedFields = fields
	d.AppliedRules = applied
	return d, nil
}

// DocumentRepository

func (db *DB) Create(ctx context.Context, doc domain.Document) (domain.Document, error) {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.Status == "" {
		doc.Status = domain.StatusPending
	}
	fields := doc.ExtractedFields
	if fields == nil {
		fields = map[string]string{}
	}
	applied := doc.AppliedRules
	if applied == nil {
		applied = []string{}
	}
	row := db.Pool.QueryRow(ctx, `
        INSERT INTO documents (id, type, raw_text, extracted_fields, risk_score, status, auto_approved,
            workflow_reason, applied_rules)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING `+documentColumns,
		doc.ID, string(doc.Type), doc.RawText, fields, doc.RiskScore, string(doc.Status), doc.AutoApproved,
		doc.WorkflowReason, applied)
	out, err := scanDocument(row)
	if err != nil {
		return domain.Document{}, domain.Persistence(err, "insert document")
	}
	return out, nil
}

func (db *DB) GetByID(ctx context.Context, id string) (domain.Document, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Document{}, domain.NotFoundf("document %s not found", id)
	}
	row := db.Pool.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id)
	d, err := scanDocument(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Document{}, domain.NotFoundf("document %s not found", id)
	}
	if err != nil {
		return domain.Document{}, domain.Persistence(err, "load document %s", id)
	}
	return d, nil
}

// Update applies patch only when the stored version still equals
// expectedVersion.
func (db *DB) Update(ctx context.Context, id string, expectedVersion int64, p domain.DocumentPatch) (domain.Document, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Document{}, domain.NotFoundf("document %s not found", id)
	}
	var fields, applied any
	if p.ExtractedFields != nil {
		fields = p.ExtractedFields
	}
	if p.AppliedRules != nil {
		applied = p.AppliedRules
	}
	row := db.Pool.QueryRow(ctx, `
        UPDATE documents SET
            status           = COALESCE($3, status),
            auto_approved    = COALESCE($4, auto_approved),
            workflow_reason  = COALESCE($5, workflow_reason),
            extracted_fields = COALESCE($6, extracted_fields),
            risk_score       = COALESCE($7, risk_score),
            applied_rules    = COALESCE($8, applied_rules),
            reviewed_by      = COALESCE($9, reviewed_by),
            reviewed_at      = COALESCE($10, reviewed_at),
            review_comments  = COALESCE($11, review_comments),
            rejection_reason = COALESCE($12, rejection_reason),
            version          = version + 1,
            updated_at       = now()
        WHERE id = $1 AND version = $2
        RETURNING `+documentColumns,
		id, expectedVersion, statusArg(p.Status), p.AutoApproved, p.WorkflowReason, fields, p.RiskScore, applied,
		p.ReviewedBy, timeArg(p.ReviewedAt), p.ReviewComments, p.RejectionReason)
	d, err := scanDocument(row)
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if err := db.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM documents WHERE id = $1)`, id).Scan(&exists); err != nil {
			return domain.Document{}, domain.Persistence(err, "check document %s", id)
		}
		if !exists {
			return domain.Document{}, domain.NotFoundf("document %s not found", id)
		}
		return domain.Document{}, domain.Conflict(id, expectedVersion)
	}
	if err != nil {
		return domain.Document{}, domain.Persistence(err, "update document %s", id)
	}
	return d, nil
}

func (db *DB) GetByStatus(ctx context.Context, status domain.Status) ([]domain.Document, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+documentColumns+` FROM documents WHERE status = $1 ORDER BY created_at`, string(status))
	if err != nil {
		return nil, domain.Persistence(err, "list %s documents", status)
	}
	defer rows.Close()
	var out []domain.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, domain.Persistence(err, "scan document")
		}
		out = append(out, d)
	}
	return out, domain.Persistence(rows.Err(), "list %s documents", status)
}

func (db *DB) Statistics(ctx context.Context) (domain.Statistics, error) {
	var (
		st  domain.Statistics
		avg float64
	)
	err := db.Pool.QueryRow(ctx, `
        SELECT count(*),
               count(*) FILTER (WHERE auto_approved),
               count(*) FILTER (WHERE reviewed_by IS NOT NULL),
               count(*) FILTER (WHERE status = 'needs-review'),
               count(*) FILTER (WHERE status = 'approved'),
               count(*) FILTER (WHERE status = 'rejected'),
               COALESCE(avg(risk_score), 0)::float8
        FROM documents
    `).Scan(&st.Total, &st.AutoApproved, &st.ManuallyReviewed, &st.Pending, &st.Approved, &st.Rejected, &avg)
	if err != nil {
		return domain.Statistics{}, domain.Persistence(err, "compute statistics")
	}
	st.AverageRiskScore = domain.RoundScore(avg)
	return st, nil
}

func statusArg(s *domain.Status) any {
	if s == nil {
		return nil
	}
	return string(*s)
}

func timeArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
