package audit

import (
	"bufio"
	"io"
	"strings"
	"time"

	"docreview/internal/domain"
)

var csvHeader = []string{"ID", "Timestamp", "Actor ID", "Actor", "Action", "Document ID", "Details"}

// WriteCSV writes entries with every field quoted and embedded quotes doubled.
func WriteCSV(w io.Writer, entries []domain.AuditEntry) error {
	bw := bufio.NewWriter(w)
	if err := writeRow(bw, csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			e.ID,
			e.Timestamp.UTC().Format(time.RFC3339),
			e.ActorID,
			e.ActorName,
			e.Action,
			e.DocumentID,
			e.Details,
		}
		if err := writeRow(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRow(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(quote(f)); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\r\n")
	return err
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
