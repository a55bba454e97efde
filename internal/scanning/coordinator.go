package scanning

import (
	"context"
	"fmt"
	"privacymon/internal/config"
	"privacymon/pkg/domain"
	"privacymon/pkg/logger"
	"privacymon/pkg/metrics"
	"privacymon/pkg/notify"
	"privacymon/pkg/serrors"
	"privacymon/pkg/storage"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// summaryErrors is how many collected errors the scan's error message keeps.
	summaryErrors = 3
	// maxErrorMessage matches the width of the stored error message.
	maxErrorMessage = 500
	// notifiedErrors is how many errors a completion alert lists.
	notifiedErrors = 5
)

// Options configure how runner jobs are enqueued.
type Options struct {
	Retry RetryPolicy
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Retry: NewRetryPolicy(cfg.Scanner.MaxAttempts, cfg.Scanner.RetryBackoff),
	}
}

type coordinator struct {
	options  Options
	storage  storage.Storage
	notifier notify.Notifier
	metrics  *metrics.Scanning
}

// NewCoordinator creates a Coordinator backed by storage. m may be nil.
func NewCoordinator(storage storage.Storage, notifier notify.Notifier, m *metrics.Scanning, options Options) Coordinator {
	if m == nil {
		m = metrics.Noop()
	}

	return &coordinator{
		options:  options,
		storage:  storage,
		notifier: notifier,
		metrics:  m,
	}
}

// StartScan stores the scan and its runner jobs in one transaction, so a scan
// never exists without the jobs that will finish it.
func (c *coordinator) StartScan(ctx context.Context,
	kind domain.ScanKind,
	subjectIDs []domain.SubjectID,
) (*domain.Scan, error) {
	if !kind.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown scan kind %q", kind)
	}

	ids := make([]uuid.UUID, len(subjectIDs))
	for i, id := range subjectIDs {
		ids[i] = uuid.UUID(id)
	}

	var scan *domain.Scan
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreScan(ctx, domain.Scan{
			Kind:           kind,
			Status:         domain.ScanStatusPending,
			PendingRunners: kind.Runners(),
		})
		if err != nil {
			return fmt.Errorf("could not store scan: %w", err)
		}
		scan = stored

		for _, runner := range kind.Runners() {
			added, err := tx.AddJob(ctx, RunnerArgs{
				ScanID:      uuid.UUID(scan.ID),
				Runner:      runner,
				SubjectIDs:  ids,
				maxAttempts: c.options.Retry.MaxAttempts,
			}, nil)
			if err != nil {
				return fmt.Errorf("could not add %s job: %w", runner, err)
			}
			if !added {
				return fmt.Errorf("%s job for scan %s already queued", runner, scan.ID)
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not start scan: %w", err)
	}

	c.metrics.ScanStarted(ctx, string(kind))
	logger.Info(ctx, "scan started", zap.Stringer("scan_id", scan.ID), zap.String("kind", string(kind)))

	return scan, nil
}

func (c *coordinator) RunnerStarted(ctx context.Context, scanID domain.ScanID) error {
	if _, err := c.storage.UpdateScanByID(ctx, scanID, storage.ScanUpdates{
		Status:     domain.ScanStatusRunning,
		FromStatus: domain.ScanStatusPending,
	}); err != nil {
		return fmt.Errorf("could not mark scan running: %w", err)
	}

	return nil
}

// Summarize joins the first three errors with "; ", cut to the stored width.
func Summarize(errs []string) string {
	if len(errs) > summaryErrors {
		errs = errs[:summaryErrors]
	}

	msg := strings.Join(errs, "; ")
	if utf8.RuneCountInString(msg) > maxErrorMessage {
		msg = string([]rune(msg)[:maxErrorMessage])
	}

	return msg
}

func (c *coordinator) ReportRunner(ctx context.Context,
	scanID domain.ScanID,
	runner domain.RunnerKind,
	outcome Outcome,
	runErr error,
) (*domain.Scan, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("scan_id", scanID), zap.String("runner", string(runner)))

	report := storage.RunnerReport{
		Runner:   runner,
		Subjects: outcome.Subjects,
		Errors:   outcome.Errors,
	}
	if runErr != nil {
		report.Failed = true
		report.Errors = append([]string{runErr.Error()}, outcome.Errors...)
	}

	var final *domain.Scan
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		scan, err := tx.ReportScanRunner(ctx, scanID, report)
		if err != nil {
			return fmt.Errorf("could not report runner: %w", err)
		}
		if scan == nil {
			logger.Info(ctx, "runner already reported")

			return nil
		}
		if len(scan.PendingRunners) > 0 {
			return nil
		}

		status := domain.ScanStatusCompleted
		if scan.Failed {
			status = domain.ScanStatusFailed
		}
		summary := Summarize(scan.Errors)
		now := time.Now().UTC()

		final, err = tx.UpdateScanByID(ctx, scanID, storage.ScanUpdates{
			Status:       status,
			ErrorMessage: &summary,
			CompletedAt:  &now,
		})
		if err != nil {
			return fmt.Errorf("could not finalize scan: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	if final == nil {
		return nil, nil
	}

	c.metrics.ScanFinished(ctx, string(final.Kind), string(final.Status))
	logger.Info(ctx, "scan finished",
		zap.String("status", string(final.Status)),
		zap.Int("exposures_found", final.ExposuresFound),
		zap.Int("errors", len(final.Errors)))

	if final.ExposuresFound > 0 || len(final.Errors) > 0 {
		errs := final.Errors
		if len(errs) > notifiedErrors {
			errs = errs[:notifiedErrors]
		}
		c.notifier.NotifyScanComplete(ctx, notify.ScanSummary{
			Kind:         final.Kind,
			Status:       final.Status,
			Subjects:     final.SubjectsScanned,
			NewExposures: final.ExposuresFound,
			Errors:       errs,
		})
	}

	return final, nil
}

// Scan returns a single scan, or a not-found error.
func (c *coordinator) Scan(ctx context.Context, scanID domain.ScanID) (*domain.Scan, error) {
	scan, err := c.storage.ScanByID(ctx, scanID)
	if err != nil {
		return nil, fmt.Errorf("could not get scan: %w", err)
	}
	if scan == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scan not found")
	}

	return scan, nil
}

// Scans returns a page of scans, newest first. The cursor is an opaque string
// returned by a previous call; the next cursor is empty on the last page.
func (c *coordinator) Scans(ctx context.Context, cursor string, limit uint) ([]domain.Scan, string, error) {
	var after *storage.ScanCursor
	if cursor != "" {
		parsed, err := storage.ParseScanCursor(cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		after = &parsed
	}

	page, err := c.storage.Scans(ctx, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get scans: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.String()
	}

	return page.Scans, next, nil
}
