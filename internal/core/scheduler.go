package core

// scheduler.go provides the background refresh loop.
//
// Each tick runs one full refresh cycle against the data source. The loop
// is long-running and context-aware for graceful shutdown. Failed cycles
// are logged and leave the previous batch in place; they never take the
// process down.

import (
	"context"
	"log/slog"
	"time"
)

// DefaultRefreshInterval is how often the current batch is recomputed when
// no interval is configured.
const DefaultRefreshInterval = 30 * time.Second

// StartRefreshScheduler runs a refresh immediately, then on every tick of
// the given interval until the context is cancelled.
func (s *Service) StartRefreshScheduler(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	slog.Info("refresh scheduler started", "interval", interval)

	s.runRefreshJob(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("refresh scheduler stopped")
			return
		case <-ticker.C:
			s.runRefreshJob(ctx)
		}
	}
}

// runRefreshJob performs one refresh cycle and logs the outcome.
func (s *Service) runRefreshJob(ctx context.Context) {
	start := time.Now()

	batch, err := s.Refresh(ctx)
	if err != nil {
		slog.Error("refresh failed", "error", err)
		return
	}

	slog.Info("refresh completed",
		"batch_id", batch.ID,
		"products", batch.Aggregates.TotalProducts,
		"low_stock", batch.Aggregates.LowStock,
		"critical", batch.Aggregates.Critical,
		"skipped_rows", batch.SkippedRows,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
