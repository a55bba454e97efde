package storage

import (
	"context"
	"privacymon/pkg/domain"
)

// SubjectStorage gives access to monitored subjects.
type SubjectStorage interface {
	// StoreSubjects inserts subjects and returns the stored rows, in input order.
	StoreSubjects(ctx context.Context, subjects ...domain.Subject) ([]domain.Subject, error)
	// Subjects returns the subjects with the given IDs, or every subject when
	// ids is empty. Unknown IDs are silently skipped. Results are ordered by
	// creation time.
	Subjects(ctx context.Context, ids []domain.SubjectID) ([]domain.Subject, error)
}
