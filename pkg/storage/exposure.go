package storage

import (
	"context"
	"privacymon/pkg/domain"
)

// ExposureStorage records exposures. The (subject, source, source name) key is
// unique in every implementation.
type ExposureStorage interface {
	// ExposureExists reports whether an exposure with the given key is stored.
	ExposureExists(ctx context.Context, key domain.ExposureKey) (bool, error)
	// StoreExposure inserts the exposure and returns the stored row. It returns
	// nil without error when an exposure with the same key already exists.
	StoreExposure(ctx context.Context, exposure domain.Exposure) (*domain.Exposure, error)
}
