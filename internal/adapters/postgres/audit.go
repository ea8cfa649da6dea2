package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"docreview/internal/domain"
)

// AuditLog adapts DB to ports.AuditRepository. Append trims the table to the
// retention cap in the same transaction, oldest rows first.
type AuditLog struct{ db *DB }

func (db *DB) AuditLog() *AuditLog { return &AuditLog{db: db} }

func (a *AuditLog) Append(ctx context.Context, e domain.AuditEntry) (err error) {
	tx, err := a.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Persistence(err, "begin audit append")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = domain.Persistence(tx.Commit(ctx), "commit audit append")
		}
	}()

	if _, err = tx.Exec(ctx, `
        INSERT INTO audit_log (id, created_at, actor_id, actor_name, action, document_id, details)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, e.ID, e.Timestamp, e.ActorID, e.ActorName, e.Action, e.DocumentID, e.Details); err != nil {
		return domain.Persistence(err, "insert audit entry")
	}
	if _, err = tx.Exec(ctx, `
        DELETE FROM audit_log
        WHERE seq <= (SELECT seq FROM audit_log ORDER BY seq DESC OFFSET $1 LIMIT 1)
    `, a.db.retention); err != nil {
		return domain.Persistence(err, "trim audit log")
	}
	return nil
}

// List returns up to limit of the newest entries, oldest first.
func (a *AuditLog) List(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := a.db.Pool.Query(ctx, `
        SELECT id, created_at, actor_id, actor_name, action, document_id, details FROM (
            SELECT * FROM audit_log ORDER BY seq DESC LIMIT $1
        ) recent ORDER BY seq
    `, lim)
	if err != nil {
		return nil, domain.Persistence(err, "list audit entries")
	}
	defer rows.Close()
	var out []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.ActorID, &e.ActorName, &e.Action, &e.DocumentID, &e.Details); err != nil {
			return nil, domain.Persistence(err, "scan audit entry")
		}
		out = append(out, e)
	}
	return out, domain.Persistence(rows.Err(), "list audit entries")
}
