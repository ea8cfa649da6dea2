package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"docreview/internal/domain"
)

// ClaimNextPending selects the oldest pending document using SKIP LOCKED and
// marks it processing.
func (db *DB) ClaimNextPending(ctx context.Context) (id string, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", false, domain.Persistence(err, "begin claim")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = domain.Persistence(tx.Commit(ctx), "commit claim")
		}
	}()

	err = tx.QueryRow(ctx, `
        SELECT id FROM documents
        WHERE status = 'pending'
        ORDER BY created_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, domain.Persistence(err, "select pending document")
	}
	if _, err = tx.Exec(ctx, `
        UPDATE documents SET status = 'processing', version = version + 1, updated_at = now() WHERE id = $1
    `, id); err != nil {
		return "", false, domain.Persistence(err, "mark document processing")
	}
	return id, true, nil
}
