// Package worker runs background jobs beside the HTTP surface.
package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/govkit/governance-service/internal/config"
	"github.com/govkit/governance-service/internal/derive"
	"github.com/govkit/governance-service/internal/store"
)

// StaleReporter periodically logs deliverables that have not been touched
// within the configured threshold. It only reports; nothing is mutated.
type StaleReporter struct {
	store     *store.Store
	logger    *zap.Logger
	interval  time.Duration
	threshold time.Duration
}

// NewStaleReporter builds a reporter from worker config.
func NewStaleReporter(st *store.Store, logger *zap.Logger, cfg config.WorkerConfig) *StaleReporter {
	return &StaleReporter{
		store:     st,
		logger:    logger,
		interval:  cfg.StaleCheckInterval(),
		threshold: cfg.StaleThreshold(),
	}
}

// Run blocks until ctx is cancelled, scanning once per interval. Call it in
// its own goroutine.
func (r *StaleReporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.scan(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.scan(ctx)
		}
	}
}

func (r *StaleReporter) scan(ctx context.Context) {
	deliverables, err := r.store.Deliverables.GetAll(ctx)
	if err != nil {
		r.logger.Warn("stale scan could not read deliverables", zap.Error(err))
		return
	}

	stale := derive.StaleDeliverables(deliverables, r.store.Now(), r.threshold)
	if len(stale) == 0 {
		return
	}
	for _, d := range stale {
		r.logger.Info("deliverable has gone stale",
			zap.String("id", d.ID),
			zap.String("title", d.Title),
			zap.String("status", string(d.Status)),
			zap.Time("updatedAt", d.UpdatedAt),
		)
	}
	r.logger.Info("stale scan complete", zap.Int("staleCount", len(stale)))
}
