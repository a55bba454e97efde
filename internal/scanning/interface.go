// Package scanning orchestrates exposure scans: a Coordinator creates scans
// and folds runner outcomes into them, and Runners check every subject
// against one kind of source and record what is new.
package scanning

import (
	"context"
	"privacymon/pkg/domain"
)

// OutcomeStatus tells how a runner attempt ended when it did not error.
type OutcomeStatus string

const (
	// OutcomeCompleted means every loaded subject was processed. Per-item
	// errors may still be present.
	OutcomeCompleted OutcomeStatus = "completed"
	// OutcomeNoSubjects means there was nothing to scan. Nothing was written.
	OutcomeNoSubjects OutcomeStatus = "no_subjects"
)

// Outcome is the result of one runner attempt.
type Outcome struct {
	Status OutcomeStatus
	// Subjects is the number of subjects loaded.
	Subjects int
	// NewExposures counts exposures created by this attempt. They are already
	// added to the scan's counter.
	NewExposures int
	// Errors are per-item failures that did not stop the run.
	Errors []string
}

//go:generate mockgen -package mockscanning -source=interface.go -destination=mock/mockscanning.go *
type Coordinator interface {
	// StartScan creates a pending scan and queues one job per runner the kind
	// requires. An empty subjectIDs scans every subject.
	StartScan(ctx context.Context, kind domain.ScanKind, subjectIDs []domain.SubjectID) (*domain.Scan, error)
	// RunnerStarted moves a pending scan to running.
	RunnerStarted(ctx context.Context, scanID domain.ScanID) error
	// ReportRunner folds a runner's final outcome into the scan and finalizes
	// it once every runner has reported. runErr is the hard error that ended
	// the runner, if any. The finalized scan is returned, or nil while other
	// runners are pending or when the runner had already reported.
	ReportRunner(ctx context.Context,
		scanID domain.ScanID,
		runner domain.RunnerKind,
		outcome Outcome,
		runErr error) (*domain.Scan, error)
	Scan(ctx context.Context, scanID domain.ScanID) (*domain.Scan, error)
	Scans(ctx context.Context, cursor string, limit uint) ([]domain.Scan, string, error)
}

// Runner scans subjects against one kind of source.
type Runner interface {
	Kind() domain.RunnerKind
	// Run scans the given subjects, or every subject when subjectIDs is empty,
	// on behalf of scanID. New exposures are committed as they are found, so
	// a returned error never discards earlier progress. Errors wrapping
	// serrors.ErrRateLimited or serrors.ErrUnauthorized end the run early.
	Run(ctx context.Context, scanID domain.ScanID, subjectIDs []domain.SubjectID) (Outcome, error)
}
