package textsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docreview/internal/domain"
)

func write(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func TestPlainText(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "inv.txt", "Invoice #A100 for $1,200")

	text, err := NewFiles(dir).ProduceText(context.Background(), "inv.txt")
	require.NoError(t, err)
	assert.Equal(t, "Invoice #A100 for $1,200", text)
}

func TestHTMLIsFlattened(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "inv.html", `<html><head><style>p{color:red}</style><script>var x = "$99,999";</script></head>
<body><h1>Invoice #A100</h1><p>Total:   <b>$1,200</b></p><p>Acme &amp; Sons Ltd</p></body></html>`)

	text, err := NewFiles(dir).ProduceText(context.Background(), "inv.html")
	require.NoError(t, err)
	assert.Equal(t, "Invoice #A100\nTotal: $1,200\nAcme & Sons Ltd", text)
}

func TestMissingFileIsExtractionError(t *testing.T) {
	_, err := NewFiles(t.TempDir()).ProduceText(context.Background(), "nope.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrExtraction))
}

func TestPathsOutsideRootAreRejected(t *testing.T) {
	dir := t.TempDir()
	inner := filepath.Join(dir, "inner")
	require.NoError(t, os.Mkdir(inner, 0o700))
	write(t, dir, "secret.txt", "x")

	_, err := NewFiles(inner).ProduceText(context.Background(), "../secret.txt")
	assert.True(t, errors.Is(err, domain.ErrExtraction))
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFiles(t.TempDir()).ProduceText(ctx, "a.txt")
	assert.True(t, errors.Is(err, domain.ErrExtraction))
}
