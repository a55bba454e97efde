package scanning

import (
	"privacymon/pkg/domain"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// uniqueStates are the job states in which a duplicate insert is skipped.
var uniqueStates = []rivertype.JobState{ //nolint: gochecknoglobals
	rivertype.JobStateAvailable,
	rivertype.JobStateCompleted,
	rivertype.JobStatePending,
	rivertype.JobStateRunning,
	rivertype.JobStateRetryable,
	rivertype.JobStateScheduled,
}

// RunnerArgs asks a worker to run one runner for one scan. A scan has at most
// one job per runner.
type RunnerArgs struct {
	ScanID uuid.UUID         `json:"scanId" river:"unique"`
	Runner domain.RunnerKind `json:"runner" river:"unique"`
	// SubjectIDs restricts the run. Empty means every subject.
	SubjectIDs []uuid.UUID `json:"subjectIds,omitempty"`

	maxAttempts int
}

func (args RunnerArgs) Kind() string { return "ScanRunnerJob" }

func (args RunnerArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: uniqueStates,
		},
	}
}

// Subjects returns SubjectIDs as domain IDs.
func (args RunnerArgs) Subjects() []domain.SubjectID {
	out := make([]domain.SubjectID, len(args.SubjectIDs))
	for i, id := range args.SubjectIDs {
		out[i] = domain.SubjectID(id)
	}

	return out
}

// ScheduledScanArgs starts a scan of every subject. It is inserted by the
// periodic scheduler.
type ScheduledScanArgs struct {
	ScanKind domain.ScanKind `json:"kind"`
}

func (args ScheduledScanArgs) Kind() string { return "ScheduledScanJob" }

func (args ScheduledScanArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: 1}
}
