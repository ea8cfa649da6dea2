package main

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"docreview/internal/adapters/memory"
	pg "docreview/internal/adapters/postgres"
	"docreview/internal/config"
	"docreview/internal/logging"
	"docreview/internal/policy"
	"docreview/internal/ports"
	"docreview/internal/services/review"
)

// app holds the wired collaborators shared by every command.
type app struct {
	cfg    config.Config
	log    *zap.Logger
	policy *policy.Policy
	docs   ports.DocumentRepository
	audit  ports.AuditRepository
	claims ports.ClaimRepository
	db     *pg.DB
}

func loadConfig() (config.Config, error) {
	path := configFile
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	return config.LoadFile(path)
}

// newApp loads configuration and opens the stores. Without DATABASE_URL the
// in-memory stores are used.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	log, err := logging.New(cfg.Logging())
	if err != nil {
		return nil, err
	}
	pol, err := policy.Load(cfg.PolicyFile)
	if err != nil {
		return nil, errors.Wrap(err, "load policy")
	}
	a := &app{cfg: cfg, log: log, policy: pol}

	if cfg.UseMemory() {
		docs := memory.NewDocuments()
		a.docs, a.claims = docs, docs
		a.audit = memory.NewAuditLog(cfg.AuditRetention)
		log.Warn("DATABASE_URL not set, using in-memory stores")
		return a, nil
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL, cfg.AuditRetention)
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}
	a.db = db
	a.docs, a.claims, a.audit = db, db, db.AuditLog()
	return a, nil
}

func (a *app) service(text ports.TextSource) *review.Service {
	return review.New(a.docs, a.audit, text, a.policy, review.WithLogger(a.log))
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
	_ = a.log.Sync()
}
