package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "docreview/internal/adapters/http"
	"docreview/internal/adapters/textsource"
	"docreview/internal/workers/reviewrunner"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and background review workers",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var migrateOnStart bool

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply database migrations before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if migrateOnStart && a.db != nil {
		if err := a.db.Migrate(ctx); err != nil {
			return err
		}
	}

	svc := a.service(textsource.NewFiles(a.cfg.TextRoot))
	if a.cfg.ReviewWorkers > 0 {
		reviewrunner.Run(ctx, a.claims, svc, a.cfg.ReviewWorkers, a.cfg.PollInterval, a.log)
		a.log.Info("review workers started", zap.Int("workers", a.cfg.ReviewWorkers))
	}

	srv := &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           httpadapter.New(svc, a.log).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	a.log.Info("listening",
		zap.String("addr", a.cfg.ListenAddr),
		zap.String("env", a.cfg.Env),
		zap.String("policy_version", a.policy.Version),
	)

	select {
	case <-ctx.Done():
		a.log.Info("shutting down")
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "serve")
	}
}
