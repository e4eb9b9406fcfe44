// internal/workers/snapshot_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/tecops/assetdesk/internal/core/ports"
)

// Task type names handled by the worker
const (
	TypeDeviceSnapshot = "snapshot:devices"
)

// SnapshotProcessor runs directory device snapshots in the background.
// Tasks come from the dashboard trigger endpoint and from the scheduler's
// periodic entry; both enqueue the same task type.
type SnapshotProcessor struct {
	service ports.ReconcileService
	logger  *slog.Logger
}

// NewSnapshotProcessor creates a new snapshot processor
func NewSnapshotProcessor(service ports.ReconcileService, logger *slog.Logger) *SnapshotProcessor {
	return &SnapshotProcessor{
		service: service,
		logger:  logger.With(slog.String("processor", "snapshot")),
	}
}

// ProcessSnapshot fetches the directory device population and persists a
// snapshot. A directory fault fails the task so asynq retries it; local
// state is untouched on failure.
func (p *SnapshotProcessor) ProcessSnapshot(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	p.logger.InfoContext(ctx, "running device snapshot")

	snap, err := p.service.RunSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("snapshot failed: %w", err)
	}

	p.logger.InfoContext(ctx, "device snapshot completed",
		slog.String("snapshot_id", snap.ID.String()),
		slog.Int("total", snap.Total),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}
