package worker

import (
	"context"
	"fmt"
	"privacymon/internal/scanning"
	"privacymon/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ScheduledScanWorker starts a scan of every subject. Jobs are inserted by
// River's periodic scheduler.
type ScheduledScanWorker struct {
	river.WorkerDefaults[scanning.ScheduledScanArgs]

	coordinator scanning.Coordinator
}

func NewScheduledScanWorker(coordinator scanning.Coordinator) *ScheduledScanWorker {
	return &ScheduledScanWorker{coordinator: coordinator}
}

func (w *ScheduledScanWorker) Work(ctx context.Context, job *river.Job[scanning.ScheduledScanArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("kind", string(job.Args.ScanKind)))

	scan, err := w.coordinator.StartScan(ctx, job.Args.ScanKind, nil)
	if err != nil {
		return fmt.Errorf("could not start scheduled scan: %w", err)
	}

	logger.Info(ctx, "scheduled scan started", zap.Stringer("scan_id", scan.ID))

	return nil
}
