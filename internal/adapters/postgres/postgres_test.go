package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docreview/internal/domain"
)

// openTestDB connects to TEST_DATABASE_URL, migrates and truncates. Tests are
// skipped when the variable is unset.
func openTestDB(t *testing.T, retention int) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	db, err := Connect(ctx, url, retention)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx))
	_, err = db.Pool.Exec(ctx, `TRUNCATE documents, audit_log`)
	require.NoError(t, err)
	return db
}

func TestDocumentLifecycle(t *testing.T) {
	db := openTestDB(t, 0)
	ctx := context.Background()

	doc, err := db.Create(ctx, domain.Document{Type: domain.TypeInvoice, RawText: "Invoice #INV-1"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, doc.Status)
	assert.EqualValues(t, 1, doc.Version)
	assert.Empty(t, doc.ExtractedFields)

	st := domain.StatusNeedsReview
	score := 5
	reason := "Document requires manual review"
	updated, err := db.Update(ctx, doc.ID, doc.Version, domain.DocumentPatch{
		Status:          &st,
		RiskScore:       &score,
		WorkflowReason:  &reason,
		ExtractedFields: map[string]string{domain.FieldInvoiceNumber: "INV-1"},
		AppliedRules:    []string{"ModerateRiskReview"},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated.Version)
	assert.Equal(t, "INV-1", updated.ExtractedFields[domain.FieldInvoiceNumber])
	assert.Equal(t, []string{"ModerateRiskReview"}, updated.AppliedRules)

	_, err = db.Update(ctx, doc.ID, doc.Version, domain.DocumentPatch{Status: &st})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = db.Update(ctx, uuid.NewString(), 1, domain.DocumentPatch{Status: &st})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = db.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	pending, err := db.GetByStatus(ctx, domain.StatusNeedsReview)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, doc.ID, pending[0].ID)

	stats, err := db.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 5.0, stats.AverageRiskScore)
}

func TestClaimNextPending(t *testing.T) {
	db := openTestDB(t, 0)
	ctx := context.Background()

	_, found, err := db.ClaimNextPending(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	doc, err := db.Create(ctx, domain.Document{Type: domain.TypeContract, RawText: "Agreement"})
	require.NoError(t, err)

	id, found, err := db.ClaimNextPending(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, doc.ID, id)

	got, err := db.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, got.Status)

	_, found, err = db.ClaimNextPending(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAuditRetention(t *testing.T) {
	db := openTestDB(t, 3)
	ctx := context.Background()
	log := db.AuditLog()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, log.Append(ctx, domain.AuditEntry{
			ID:        uuid.NewString(),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			ActorID:   "system",
			ActorName: "System",
			Action:    domain.ActionSubmit,
			Details:   string(rune('a' + i)),
		}))
	}

	all, err := log.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "d", "e"}, []string{all[0].Details, all[1].Details, all[2].Details})

	last, err := log.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, "e", last[0].Details)
}
