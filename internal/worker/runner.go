package worker

import (
	"context"
	"fmt"
	"privacymon/internal/scanning"
	"privacymon/pkg/domain"
	"privacymon/pkg/logger"
	"privacymon/pkg/metrics"
	"privacymon/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// RunnerWorker runs one scan runner per job and reports the outcome to the
// coordinator.
//
// Error handling: authentication faults fail the runner at once and cancel
// the job. Other errors are returned so River retries the job after the
// policy's backoff; once attempts are exhausted the runner is reported as
// failed with the last error and the job is cancelled. A retried run is safe
// because findings are de-duplicated and counted as they are committed.
type RunnerWorker struct {
	river.WorkerDefaults[scanning.RunnerArgs]

	coordinator scanning.Coordinator
	runners     map[domain.RunnerKind]scanning.Runner
	policy      scanning.RetryPolicy
	timeout     time.Duration
	metrics     *metrics.Scanning
}

// NewRunnerWorker creates a RunnerWorker dispatching to runners by kind.
// A zero timeout uses River's default job timeout.
func NewRunnerWorker(coordinator scanning.Coordinator,
	policy scanning.RetryPolicy,
	timeout time.Duration,
	m *metrics.Scanning,
	runners ...scanning.Runner,
) *RunnerWorker {
	if m == nil {
		m = metrics.Noop()
	}

	byKind := make(map[domain.RunnerKind]scanning.Runner, len(runners))
	for _, r := range runners {
		byKind[r.Kind()] = r
	}

	return &RunnerWorker{
		coordinator: coordinator,
		runners:     byKind,
		policy:      policy,
		timeout:     timeout,
		metrics:     m,
	}
}

// NextRetry schedules the next attempt after the policy's backoff.
func (w *RunnerWorker) NextRetry(job *river.Job[scanning.RunnerArgs]) time.Time {
	return w.policy.NextRetry(job.Attempt, time.Now())
}

func (w *RunnerWorker) Timeout(*river.Job[scanning.RunnerArgs]) time.Duration {
	return w.timeout
}

func (w *RunnerWorker) Work(ctx context.Context, job *river.Job[scanning.RunnerArgs]) error {
	scanID := domain.ScanID(job.Args.ScanID)
	kind := job.Args.Runner
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Stringer("scan_id", scanID),
		zap.String("runner", string(kind)),
		zap.Int("attempt", job.Attempt))

	runner, ok := w.runners[kind]
	if !ok {
		err := fmt.Errorf("no runner registered for %q", kind)
		w.fail(ctx, scanID, kind, scanning.Outcome{}, err)

		return river.JobCancel(err) //nolint: wrapcheck
	}

	if err := w.coordinator.RunnerStarted(ctx, scanID); err != nil {
		return fmt.Errorf("could not start runner: %w", err)
	}

	start := time.Now()
	outcome, err := runner.Run(ctx, scanID, job.Args.Subjects())
	switch {
	case err == nil:
		w.metrics.RunnerFinished(ctx, string(kind), string(outcome.Status), time.Since(start))
		if _, err := w.coordinator.ReportRunner(ctx, scanID, kind, outcome, nil); err != nil {
			return fmt.Errorf("could not report runner: %w", err)
		}

		return nil

	case serrors.Fatal(err):
		w.metrics.RunnerFinished(ctx, string(kind), "failed", time.Since(start))
		logger.Error(ctx, "runner failed permanently", zap.Error(err))
		w.fail(ctx, scanID, kind, outcome, err)

		return river.JobCancel(err) //nolint: wrapcheck

	case w.policy.Exhausted(job.Attempt, job.MaxAttempts):
		w.metrics.RunnerFinished(ctx, string(kind), "failed", time.Since(start))
		logger.Error(ctx, "runner failed, no attempts left", zap.Error(err))
		w.fail(ctx, scanID, kind, outcome, err)

		return river.JobCancel(err) //nolint: wrapcheck

	default:
		w.metrics.RunnerFinished(ctx, string(kind), "retry", time.Since(start))
		logger.Warn(ctx, "runner failed, will retry",
			zap.Error(err),
			zap.Time("next_retry", w.policy.NextRetry(job.Attempt, time.Now())))

		return fmt.Errorf("could not run %s runner: %w", kind, err)
	}
}

// fail reports a hard failure. The job context may already be expired, so the
// report runs detached from its cancellation.
func (w *RunnerWorker) fail(ctx context.Context,
	scanID domain.ScanID,
	kind domain.RunnerKind,
	outcome scanning.Outcome,
	runErr error,
) {
	ctx = context.WithoutCancel(ctx)
	if _, err := w.coordinator.ReportRunner(ctx, scanID, kind, outcome, runErr); err != nil {
		logger.Error(ctx, "could not report runner failure", zap.Error(err))
	}
}
