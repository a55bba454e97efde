package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. Implementations are responsible for
// persisting the job into the underlying queue backend.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments and reports whether it
	// was inserted (false when skipped as a unique duplicate). It is atomic
	// with respect to any surrounding transaction when supported by the backend.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
