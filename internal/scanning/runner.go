package scanning

import (
	"context"
	"fmt"
	"privacymon/pkg/domain"
	"privacymon/pkg/logger"
	"privacymon/pkg/metrics"
	"privacymon/pkg/notify"
	"privacymon/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "privacymon/scanning"

// commitFunc persists a batch of findings for the subject being scanned.
type commitFunc func(ctx context.Context, findings []domain.Finding) error

// source produces findings for one subject. It calls commit for each batch
// it wants persisted and returns per-item error messages. A returned error
// aborts the whole run.
type source interface {
	kind() domain.RunnerKind
	scanSubject(ctx context.Context, subject domain.Subject, commit commitFunc) ([]string, error)
}

// RunnerDeps are the collaborators shared by every runner.
type RunnerDeps struct {
	Storage  storage.Storage
	Notifier notify.Notifier
	Metrics  *metrics.Scanning
}

type runner struct {
	RunnerDeps

	source source
	tracer trace.Tracer
}

func newRunner(deps RunnerDeps, src source) *runner {
	if deps.Metrics == nil {
		deps.Metrics = metrics.Noop()
	}

	return &runner{
		RunnerDeps: deps,
		source:     src,
		tracer:     otel.Tracer(tracerName),
	}
}

func (r *runner) Kind() domain.RunnerKind { return r.source.kind() }

func (r *runner) Run(ctx context.Context, scanID domain.ScanID, subjectIDs []domain.SubjectID) (Outcome, error) {
	kind := r.source.kind()
	ctx = logger.WithFields(ctx, zap.Stringer("scan_id", scanID), zap.String("runner", string(kind)))

	subjects, err := r.Storage.Subjects(ctx, subjectIDs)
	if err != nil {
		return Outcome{}, fmt.Errorf("could not load subjects: %w", err)
	}
	if len(subjects) == 0 {
		logger.Info(ctx, "no subjects to scan")

		return Outcome{Status: OutcomeNoSubjects}, nil
	}

	out := Outcome{Status: OutcomeCompleted, Subjects: len(subjects)}
	for _, subject := range subjects {
		if err := ctx.Err(); err != nil {
			return out, fmt.Errorf("scan interrupted: %w", err)
		}

		created, errs, err := r.scanSubject(ctx, scanID, subject)
		out.NewExposures += len(created)
		out.Errors = append(out.Errors, errs...)
		r.Metrics.ExposuresCreated(ctx, string(kind), len(created))
		r.Metrics.ItemErrors(ctx, string(kind), len(errs))

		if len(created) > 0 {
			r.Notifier.NotifyNewFindings(ctx, subject.DisplayName(), kind, created)
		}
		if err != nil {
			return out, err
		}
	}

	logger.Info(ctx, "runner finished",
		zap.Int("subjects", out.Subjects),
		zap.Int("new_exposures", out.NewExposures),
		zap.Int("errors", len(out.Errors)))

	return out, nil
}

func (r *runner) scanSubject(ctx context.Context,
	scanID domain.ScanID,
	subject domain.Subject,
) ([]domain.Finding, []string, error) {
	ctx, span := r.tracer.Start(ctx, "scanning.subject", trace.WithAttributes(
		attribute.String("scan.id", scanID.String()),
		attribute.String("scan.runner", string(r.source.kind())),
		attribute.String("subject.id", subject.ID.String()),
	))
	defer span.End()

	var created []domain.Finding
	errs, err := r.source.scanSubject(ctx, subject, func(ctx context.Context, findings []domain.Finding) error {
		batch, err := r.persist(ctx, scanID, subject.ID, findings)
		if err != nil {
			return err
		}
		created = append(created, batch...)

		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.Int("exposures.created", len(created)), attribute.Int("errors", len(errs)))

	return created, errs, err
}

// persist records the batch in one transaction and adds the number of new
// exposures to the scan counter in the same transaction.
func (r *runner) persist(ctx context.Context,
	scanID domain.ScanID,
	subjectID domain.SubjectID,
	findings []domain.Finding,
) ([]domain.Finding, error) {
	if len(findings) == 0 {
		return nil, nil
	}

	var created []domain.Finding
	if err := r.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		created = created[:0]
		dedup := NewDeduplicator(tx)
		for _, f := range findings {
			isNew, err := dedup.Record(ctx, subjectID, f)
			if err != nil {
				return err
			}
			if isNew {
				created = append(created, f)
			}
		}

		if err := tx.IncrementScanExposures(ctx, scanID, len(created)); err != nil {
			return fmt.Errorf("could not increment scan counter: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not persist findings: %w", err)
	}

	return created, nil
}
