package scanning

import (
	"context"
	"fmt"
	"privacymon/pkg/domain"
	"privacymon/pkg/storage"
)

// Deduplicator decides whether a finding is new for a subject. The key is
// (subject, source, source name); URL and description play no part.
type Deduplicator struct {
	store storage.ExposureStorage
}

// NewDeduplicator checks against store. Pass a transaction to see writes
// made earlier in the same batch.
func NewDeduplicator(store storage.ExposureStorage) Deduplicator {
	return Deduplicator{store: store}
}

func (d Deduplicator) Exists(ctx context.Context, key domain.ExposureKey) (bool, error) {
	exists, err := d.store.ExposureExists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("could not check exposure: %w", err)
	}

	return exists, nil
}

// Record stores the finding as a detected exposure unless one with the same
// key exists. It reports whether a new exposure was created. A concurrent
// insert of the same key counts as existing.
func (d Deduplicator) Record(ctx context.Context, subjectID domain.SubjectID, finding domain.Finding) (bool, error) {
	exists, err := d.Exists(ctx, finding.Key(subjectID))
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	stored, err := d.store.StoreExposure(ctx, finding.Exposure(subjectID))
	if err != nil {
		return false, fmt.Errorf("could not store exposure: %w", err)
	}

	return stored != nil, nil
}
