package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()
		if a.db == nil {
			return errors.New("DATABASE_URL is required for migrate")
		}
		if err := a.db.Migrate(cmd.Context()); err != nil {
			return err
		}
		a.log.Info("migrations applied")
		return nil
	},
}
