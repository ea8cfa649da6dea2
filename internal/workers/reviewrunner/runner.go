package reviewrunner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"docreview/internal/domain"
	"docreview/internal/logging"
	"docreview/internal/ports"
)

// Processor performs the pipeline work for a claimed document.
type Processor interface {
	ProcessDocument(ctx context.Context, actor domain.Actor, id string) (domain.Decision, error)
}

// Run starts worker goroutines that claim pending documents and process them
// as the System actor. It returns immediately; workers stop when ctx ends.
func Run(ctx context.Context, repo ports.ClaimRepository, processor Processor, concurrency int, pollInterval time.Duration, log *zap.Logger) {
	if concurrency < 1 {
		return
	}
	log = logging.OrNop(log).Named("reviewrunner")
	jobsCh := make(chan string, concurrency)

	// dispatcher loop
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		defer close(jobsCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				for {
					id, found, err := repo.ClaimNextPending(ctx)
					if err != nil {
						log.Error("claim failed", zap.Error(err))
						break
					}
					if !found {
						break
					}
					select {
					case jobsCh <- id:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	// workers
	for i := 0; i < concurrency; i++ {
		go func(idx int) {
			for id := range jobsCh {
				if _, err := processor.ProcessDocument(ctx, domain.SystemActor, id); err != nil {
					log.Warn("document processing failed",
						zap.Int("worker", idx),
						zap.String("document_id", id),
						zap.String("kind", domain.Kind(err)),
						zap.Error(err),
					)
				}
			}
		}(i)
	}
}

// ProcessInline processes one document synchronously with the same processor
// the background workers use.
func ProcessInline(ctx context.Context, processor Processor, actor domain.Actor, id string) (domain.Decision, error) {
	return processor.ProcessDocument(ctx, actor, id)
}
