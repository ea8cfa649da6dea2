package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docreview/internal/adapters/memory"
	"docreview/internal/adapters/textsource"
	"docreview/internal/api"
	"docreview/internal/domain"
	"docreview/internal/policy"
	"docreview/internal/services/review"
)

const (
	simpleInvoice = "Invoice #A100 dated Jan 5, 2024 for $1,200 from Acme Corp, contact a@b.com"
	riskyInvoice  = "Invoice #B7 dated 01/02/2024 for $300. URGENT NOTICE: overdue penalty, breach and dispute."
)

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	root := t.TempDir()
	svc := review.New(memory.NewDocuments(), memory.NewAuditLog(100), textsource.NewFiles(root), policy.Default())
	ts := httptest.NewServer(New(svc, nil).Routes())
	t.Cleanup(ts.Close)
	return ts, root
}

func do(t *testing.T, method, url string, body any, headers map[string]string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeInto[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func submit(t *testing.T, base, text string) api.Document {
	t.Helper()
	resp := do(t, http.MethodPost, base+"/documents", api.SubmitRequest{Type: "invoice", Text: text}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeInto[api.Document](t, resp)
}

func TestHealthz(t *testing.T) {
	ts, _ := newTestServer(t)
	resp := do(t, http.MethodGet, ts.URL+"/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]string{"status": "ok"}, decodeInto[map[string]string](t, resp))
}

func TestSubmitAndProcessAutoApproves(t *testing.T) {
	ts, _ := newTestServer(t)
	doc := submit(t, ts.URL, simpleInvoice)
	assert.Equal(t, api.DocumentStatusPending, doc.Status)

	resp := do(t, http.MethodPost, ts.URL+"/documents/"+doc.Id+"/process", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	d := decodeInto[api.Decision](t, resp)
	assert.Equal(t, api.DocumentStatusApproved, d.Status)
	assert.True(t, d.AutoApproved)

	resp = do(t, http.MethodGet, ts.URL+"/documents/"+doc.Id, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeInto[api.Document](t, resp)
	assert.Equal(t, api.DocumentStatusApproved, got.Status)
	assert.Equal(t, "A100", got.ExtractedFields[domain.FieldInvoiceNumber])

	// terminal documents cannot be processed again
	resp = do(t, http.MethodPost, ts.URL+"/documents/"+doc.Id+"/process", nil, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "invalid_transition", decodeInto[api.Error](t, resp).Error)
}

func TestManualReviewFlow(t *testing.T) {
	ts, _ := newTestServer(t)
	doc := submit(t, ts.URL, riskyInvoice)
	do(t, http.MethodPost, ts.URL+"/documents/"+doc.Id+"/process", nil, nil)

	resp := do(t, http.MethodGet, ts.URL+"/reviews/pending", nil, nil)
	pending := decodeInto[[]api.Document](t, resp)
	require.Len(t, pending, 1)
	assert.Equal(t, doc.Id, pending[0].Id)

	actor := map[string]string{headerActorID: "u-7", headerActorName: "Ada"}
	resp = do(t, http.MethodPost, ts.URL+"/documents/"+doc.Id+"/reject", api.RejectRequest{Reason: " "}, actor)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodPost, ts.URL+"/documents/"+doc.Id+"/approve", nil, actor)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeInto[map[string]any](t, resp)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "Document approved successfully", out["message"])

	resp = do(t, http.MethodGet, ts.URL+"/documents/"+doc.Id, nil, nil)
	got := decodeInto[api.Document](t, resp)
	require.NotNil(t, got.ReviewedBy)
	assert.Equal(t, "u-7", *got.ReviewedBy)

	resp = do(t, http.MethodGet, ts.URL+"/audit?limit=1", nil, nil)
	entries := decodeInto[[]api.AuditEntry](t, resp)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ActionManualApprove, entries[0].Action)
	assert.Equal(t, "Ada", entries[0].ActorName)

	resp = do(t, http.MethodGet, ts.URL+"/statistics", nil, nil)
	st := decodeInto[api.Statistics](t, resp)
	assert.Equal(t, 1, st.Total)
	assert.Equal(t, 1, st.ManuallyReviewed)
	assert.Equal(t, 1, st.Approved)
}

func TestErrorMapping(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/documents/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodPost, ts.URL+"/documents", api.SubmitRequest{Type: "memo", Text: "x"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodPost, ts.URL+"/documents", map[string]string{"kind": "invoice"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodGet, ts.URL+"/audit?limit=abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodPost, ts.URL+"/documents/ingest", api.IngestRequest{Type: "invoice", File: "nope.txt"}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestIngestFromTextRoot(t *testing.T) {
	ts, root := newTestServer(t)
	page := "<html><body><p>" + simpleInvoice + "</p><script>var x = 1;</script></body></html>"
	require.NoError(t, os.WriteFile(filepath.Join(root, "inv.html"), []byte(page), 0o600))

	resp := do(t, http.MethodPost, ts.URL+"/documents/ingest", api.IngestRequest{Type: "invoice", File: "inv.html"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	doc := decodeInto[api.Document](t, resp)
	assert.Contains(t, doc.RawText, "Invoice #A100")
	assert.NotContains(t, doc.RawText, "var x")
}

func TestAuditCSVExport(t *testing.T) {
	ts, _ := newTestServer(t)
	doc := submit(t, ts.URL, simpleInvoice)
	resp := do(t, http.MethodPost, ts.URL+"/documents/"+doc.Id+"/reject", api.RejectRequest{Reason: `wrong "vendor"`}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, ts.URL+"/audit/export.csv", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="audit.csv"`, resp.Header.Get("Content-Disposition"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(body), "\r\n"), "\r\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], `"ID","Timestamp"`))
	assert.Contains(t, lines[1], `"submit"`)
	assert.Contains(t, lines[2], `"manual_reject"`)
	assert.True(t, strings.HasSuffix(lines[2], `,"wrong ""vendor"""`), lines[2])
}

func TestApproveWithoutBodyAndWithComments(t *testing.T) {
	ts, _ := newTestServer(t)
	first := submit(t, ts.URL, riskyInvoice)
	second := submit(t, ts.URL, riskyInvoice)

	resp := do(t, http.MethodPost, ts.URL+"/documents/"+first.Id+"/approve", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	comments := "checked with vendor"
	resp = do(t, http.MethodPost, ts.URL+"/documents/"+second.Id+"/approve", api.ApproveRequest{Comments: &comments}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = do(t, http.MethodGet, ts.URL+"/documents/"+second.Id, nil, nil)
	got := decodeInto[api.Document](t, resp)
	require.NotNil(t, got.ReviewComments)
	assert.Equal(t, comments, *got.ReviewComments)
	assert.Equal(t, domain.SystemActor.ID, *got.ReviewedBy)
}

func TestMalformedRequestsAreValidationErrors(t *testing.T) {
	ts, _ := newTestServer(t)
	doc := submit(t, ts.URL, simpleInvoice)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/documents/"+doc.Id+"/reject", strings.NewReader("{not json"))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation", decodeInto[api.Error](t, resp).Error)

	resp = do(t, http.MethodPost, ts.URL+"/documents/"+doc.Id+"/process?timeout=soon", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodGet, ts.URL+"/audit?limit=-1", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)
	resp := do(t, http.MethodGet, ts.URL+"/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusConflict, StatusFor(domain.Conflict("x", 1)))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(domain.Persistence(assert.AnError, "write")))
	assert.Equal(t, http.StatusNotFound, StatusFor(domain.NotFoundf("x")))
}
