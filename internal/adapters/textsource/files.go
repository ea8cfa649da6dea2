// Package textsource produces raw document text from files on disk. It stands
// in for the OCR collaborator: plain text is read verbatim and HTML exports
// are flattened to their visible text.
package textsource

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/net/html"

	"docreview/internal/domain"
)

const maxFileSize = 10 << 20

type Files struct {
	root string
}

func NewFiles(root string) *Files {
	return &Files{root: root}
}

func (f *Files) ProduceText(ctx context.Context, file string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.Extraction(err, "produce text for %s", file)
	}
	path, err := f.resolve(file)
	if err != nil {
		return "", domain.Extraction(err, "produce text for %s", file)
	}
	fh, err := os.Open(path)
	if err != nil {
		return "", domain.Extraction(err, "open %s", file)
	}
	defer fh.Close()

	data, err := io.ReadAll(io.LimitReader(fh, maxFileSize+1))
	if err != nil {
		return "", domain.Extraction(err, "read %s", file)
	}
	if len(data) > maxFileSize {
		return "", domain.Extraction(errors.Newf("file exceeds %d bytes", maxFileSize), "read %s", file)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := htmlText(data)
		if err != nil {
			return "", domain.Extraction(err, "parse %s", file)
		}
		return text, nil
	default:
		return string(data), nil
	}
}

// resolve keeps lookups inside the root directory.
func (f *Files) resolve(file string) (string, error) {
	root, err := filepath.Abs(f.root)
	if err != nil {
		return "", err
	}
	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	path = filepath.Clean(path)
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf("path %q is outside %s", file, root)
	}
	return path, nil
}

var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "tr": true, "li": true, "table": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// htmlText returns the visible text of an HTML document, one block per line.
func htmlText(data []byte) (string, error) {
	z := html.NewTokenizer(bytes.NewReader(data))
	var (
		b    strings.Builder
		skip int
	)
	newline := func() {
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
			b.WriteByte('\n')
		}
	}
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return strings.TrimSpace(b.String()), nil
			}
			return "", z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				skip++
			}
			if blockElements[tag] {
				newline()
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if (tag == "script" || tag == "style") && skip > 0 {
				skip--
			}
			if blockElements[tag] {
				newline()
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			text := strings.Join(strings.Fields(string(z.Text())), " ")
			if text == "" {
				continue
			}
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteByte(' ')
			}
			b.WriteString(text)
		}
	}
}
