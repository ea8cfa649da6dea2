package main

import (
	"encoding/json"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"docreview/internal/adapters/textsource"
	"docreview/internal/domain"
)

var docType string

var submitCmd = &cobra.Command{
	Use:   "submit FILE",
	Short: "Ingest a file, process it and print the decision",
	Long: `Ingest a text or HTML file as a new document, run the review pipeline on it
and print the stored document as JSON.

Examples:
  docreview submit --type invoice ./inbox/inv-1001.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate FILE",
	Short: "Dry run: print extracted fields, risk and decision without storing",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvaluate,
}

func init() {
	for _, c := range []*cobra.Command{submitCmd, evaluateCmd} {
		c.Flags().StringVarP(&docType, "type", "t", string(domain.TypeInvoice), "document type (invoice, contract)")
	}
}

func splitFile(path string) (dir, name string, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", "", errors.Wrapf(err, "resolve %s", path)
	}
	return filepath.Dir(abs), filepath.Base(abs), nil
}

func runSubmit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	dir, name, err := splitFile(args[0])
	if err != nil {
		return err
	}
	svc := a.service(textsource.NewFiles(dir))
	doc, err := svc.Ingest(ctx, domain.Actor{}, domain.DocumentType(docType), name)
	if err != nil {
		return err
	}
	if _, err := svc.ProcessDocument(ctx, domain.Actor{}, doc.ID); err != nil {
		return err
	}
	if doc, err = svc.Get(ctx, doc.ID); err != nil {
		return err
	}
	return printJSON(cmd, doc)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	dir, name, err := splitFile(args[0])
	if err != nil {
		return err
	}
	text, err := textsource.NewFiles(dir).ProduceText(ctx, name)
	if err != nil {
		return err
	}
	preview, err := a.service(nil).Evaluate(domain.DocumentType(docType), text)
	if err != nil {
		return err
	}
	return printJSON(cmd, preview)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
