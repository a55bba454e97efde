// Package metrics holds the OpenTelemetry instruments shared by the scan
// pipeline and the bucket layout used for latency histograms.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 300} //nolint: gochecknoglobals

const meterName = "privacymon/scanning"

// Scanning records scan lifecycle and runner activity.
type Scanning struct {
	scansStarted     metric.Int64Counter
	scansFinished    metric.Int64Counter
	exposuresCreated metric.Int64Counter
	itemErrors       metric.Int64Counter
	runnerDuration   metric.Float64Histogram
}

// New creates the scanning instruments on the given meter provider.
func New(mp metric.MeterProvider) (*Scanning, error) {
	meter := mp.Meter(meterName)

	var (
		s   Scanning
		err error
	)
	if s.scansStarted, err = meter.Int64Counter("privacymon.scans.started",
		metric.WithDescription("Scans created")); err != nil {
		return nil, fmt.Errorf("could not create scans started counter: %w", err)
	}
	if s.scansFinished, err = meter.Int64Counter("privacymon.scans.finished",
		metric.WithDescription("Scans finalized, by status")); err != nil {
		return nil, fmt.Errorf("could not create scans finished counter: %w", err)
	}
	if s.exposuresCreated, err = meter.Int64Counter("privacymon.exposures.created",
		metric.WithDescription("Exposures newly recorded, by runner")); err != nil {
		return nil, fmt.Errorf("could not create exposures counter: %w", err)
	}
	if s.itemErrors, err = meter.Int64Counter("privacymon.runner.item_errors",
		metric.WithDescription("Per-item errors collected by runners")); err != nil {
		return nil, fmt.Errorf("could not create item errors counter: %w", err)
	}
	if s.runnerDuration, err = meter.Float64Histogram("privacymon.runner.duration",
		metric.WithDescription("Runner attempt duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...)); err != nil {
		return nil, fmt.Errorf("could not create runner duration histogram: %w", err)
	}

	return &s, nil
}

// Noop returns instruments that record nothing.
func Noop() *Scanning {
	s, _ := New(noop.NewMeterProvider())

	return s
}

func (s *Scanning) ScanStarted(ctx context.Context, kind string) {
	s.scansStarted.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (s *Scanning) ScanFinished(ctx context.Context, kind, status string) {
	s.scansFinished.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("status", status)))
}

func (s *Scanning) ExposuresCreated(ctx context.Context, runner string, n int) {
	if n <= 0 {
		return
	}
	s.exposuresCreated.Add(ctx, int64(n), metric.WithAttributes(attribute.String("runner", runner)))
}

func (s *Scanning) ItemErrors(ctx context.Context, runner string, n int) {
	if n <= 0 {
		return
	}
	s.itemErrors.Add(ctx, int64(n), metric.WithAttributes(attribute.String("runner", runner)))
}

// RunnerFinished records how long a runner attempt took and how it ended.
func (s *Scanning) RunnerFinished(ctx context.Context, runner, outcome string, d time.Duration) {
	s.runnerDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("runner", runner),
		attribute.String("outcome", outcome)))
}
