package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docreview/internal/domain"
)

func TestDocumentsCompareAndSwap(t *testing.T) {
	ctx := context.Background()
	s := NewDocuments()
	doc, err := s.Create(ctx, domain.Document{Type: domain.TypeInvoice, RawText: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), doc.Version)
	assert.Equal(t, domain.StatusPending, doc.Status)

	st := domain.StatusProcessing
	updated, err := s.Update(ctx, doc.ID, 1, domain.DocumentPatch{Status: &st})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	_, err = s.Update(ctx, doc.ID, 1, domain.DocumentPatch{Status: &st})
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.True(t, errors.Is(err, domain.ErrPersistence))

	got, err := s.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, got.Status)
	assert.Equal(t, int64(2), got.Version)
}

func TestDocumentsNotFound(t *testing.T) {
	s := NewDocuments()
	_, err := s.GetByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = s.Update(context.Background(), "missing", 1, domain.DocumentPatch{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestReturnedDocumentsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewDocuments()
	doc, err := s.Create(ctx, domain.Document{ExtractedFields: map[string]string{"Amount": "$1"}})
	require.NoError(t, err)
	doc.ExtractedFields["Amount"] = "$999"

	got, err := s.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "$1", got.ExtractedFields["Amount"])
}

func TestClaimNextPendingInOrder(t *testing.T) {
	ctx := context.Background()
	s := NewDocuments()
	var ids []string
	for i := 0; i < 3; i++ {
		d, err := s.Create(ctx, domain.Document{RawText: fmt.Sprint(i)})
		require.NoError(t, err)
		ids = append(ids, d.ID)
	}
	for _, want := range ids {
		id, found, err := s.ClaimNextPending(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, want, id)
		got, _ := s.GetByID(ctx, id)
		assert.Equal(t, domain.StatusProcessing, got.Status)
	}
	_, found, err := s.ClaimNextPending(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStatisticsAndByStatus(t *testing.T) {
	ctx := context.Background()
	s := NewDocuments()
	reviewer := "rev"
	for _, d := range []domain.Document{
		{Status: domain.StatusApproved, AutoApproved: true, RiskScore: 1},
		{Status: domain.StatusNeedsReview, RiskScore: 8},
		{Status: domain.StatusRejected, RiskScore: 6, ReviewedBy: &reviewer},
	} {
		_, err := s.Create(ctx, d)
		require.NoError(t, err)
	}
	st, err := s.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Statistics{
		Total: 3, AutoApproved: 1, ManuallyReviewed: 1, Pending: 1, Approved: 1, Rejected: 1,
		AverageRiskScore: 5,
	}, st)

	pending, err := s.GetByStatus(ctx, domain.StatusNeedsReview)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 8, pending[0].RiskScore)
}

func TestAuditLogRetentionIsFIFO(t *testing.T) {
	ctx := context.Background()
	l := NewAuditLog(3)
	for i := 0; i < 5; i++ {
		require.NoError(t, l.Append(ctx, domain.AuditEntry{ID: fmt.Sprint(i)}))
	}
	all, err := l.List(ctx, 0)
	require.NoError(t, err)
	var ids []string
	for _, e := range all {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"2", "3", "4"}, ids)

	last, err := l.List(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "3", last[0].ID)
	assert.Equal(t, 3, l.Len())
}

func TestAuditLogDefaultCapacity(t *testing.T) {
	ctx := context.Background()
	l := NewAuditLog(0)
	for i := 0; i < DefaultRetention+10; i++ {
		require.NoError(t, l.Append(ctx, domain.AuditEntry{ID: fmt.Sprint(i)}))
	}
	assert.Equal(t, DefaultRetention, l.Len())
	first, _ := l.List(ctx, 0)
	assert.Equal(t, "10", first[0].ID)
}

func TestAuditLogRingWrapsInPlace(t *testing.T) {
	ctx := context.Background()
	l := NewAuditLog(4)
	assert.Equal(t, 4, l.Cap())

	empty, err := l.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	ids := func(limit int) []string {
		entries, err := l.List(ctx, limit)
		require.NoError(t, err)
		var out []string
		for _, e := range entries {
			out = append(out, e.ID)
		}
		return out
	}

	for i := 0; i < 2; i++ {
		require.NoError(t, l.Append(ctx, domain.AuditEntry{ID: fmt.Sprint(i)}))
	}
	assert.Equal(t, []string{"0", "1"}, ids(0))
	assert.Equal(t, []string{"0", "1"}, ids(10))

	for i := 2; i < 11; i++ {
		require.NoError(t, l.Append(ctx, domain.AuditEntry{ID: fmt.Sprint(i)}))
	}
	assert.Equal(t, []string{"7", "8", "9", "10"}, ids(0))
	assert.Equal(t, []string{"9", "10"}, ids(2))
	assert.Equal(t, 4, l.Len())
}
