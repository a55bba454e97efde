// Package worker runs scan runners and scheduled scans on a River queue.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"privacymon/internal/config"
	"privacymon/internal/scanning"
	"privacymon/pkg/domain"
	"privacymon/pkg/logger"
	"privacymon/pkg/metrics"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the queue client.
type Options struct {
	MaxWorkers int
	JobTimeout time.Duration
	Retry      scanning.RetryPolicy

	// SchedulerEnabled turns on periodic full and breach scans.
	SchedulerEnabled   bool
	FullScanInterval   time.Duration
	BreachScanInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:         cfg.Scanner.MaxWorkers,
		JobTimeout:         cfg.Scanner.JobTimeout,
		Retry:              scanning.NewRetryPolicy(cfg.Scanner.MaxAttempts, cfg.Scanner.RetryBackoff),
		SchedulerEnabled:   cfg.Scanner.SchedulerEnabled,
		FullScanInterval:   cfg.Scanner.FullScanInterval,
		BreachScanInterval: cfg.Scanner.BreachScanInterval,
	}
}

type Deps struct {
	Coordinator scanning.Coordinator
	Runners     []scanning.Runner
	Metrics     *metrics.Scanning
}

// periodicJobs returns the scheduled scans, or nil when scheduling is off.
func periodicJobs(opts Options) []*river.PeriodicJob {
	if !opts.SchedulerEnabled {
		return nil
	}

	schedule := func(kind domain.ScanKind, every time.Duration) *river.PeriodicJob {
		return river.NewPeriodicJob(
			river.PeriodicInterval(every),
			func() (river.JobArgs, *river.InsertOpts) {
				return scanning.ScheduledScanArgs{ScanKind: kind}, nil
			},
			nil,
		)
	}

	var jobs []*river.PeriodicJob
	if opts.FullScanInterval > 0 {
		jobs = append(jobs, schedule(domain.ScanKindFull, opts.FullScanInterval))
	}
	if opts.BreachScanInterval > 0 {
		jobs = append(jobs, schedule(domain.ScanKindBreach, opts.BreachScanInterval))
	}

	return jobs
}

// NewClient builds the River client with every worker registered, without
// starting it.
func NewClient(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, opts Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewRunnerWorker(deps.Coordinator, opts.Retry, opts.JobTimeout, deps.Metrics, deps.Runners...))
	river.AddWorker(workers, NewScheduledScanWorker(deps.Coordinator))

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 10
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodicJobs(opts),
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return riverClient, nil
}

// Start builds the River client and starts working jobs.
func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, opts Options) (*river.Client[pgx.Tx], error) {
	riverClient, err := NewClient(ctx, dbPool, deps, opts)
	if err != nil {
		return nil, err
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
