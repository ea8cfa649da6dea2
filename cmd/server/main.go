// Command server runs the document review service and its operator commands.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "docreview",
	Short: "Automated document review with rule-based approval",
	Long: `docreview extracts fields from invoices and contracts, scores their risk,
and either auto-approves them or routes them to a manual review queue.

Settings come from the environment (LISTEN_ADDR, DATABASE_URL, REVIEW_WORKERS,
POLICY_FILE, ...) and optionally a YAML file given by --config or CONFIG_FILE.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (overrides CONFIG_FILE)")
	rootCmd.AddCommand(serveCmd, migrateCmd, submitCmd, evaluateCmd)
}
