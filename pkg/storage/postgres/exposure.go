package postgres

import (
	"context"
	"fmt"
	"privacymon/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	exposuresTable = "exposures"
)

func (p *PgSQL) ExposureExists(ctx context.Context, key domain.ExposureKey) (bool, error) {
	var id uuid.UUID
	found, err := p.Builder.From(exposuresTable).
		Select("id").
		Where(
			goqu.I("subject_id").Eq(uuid.UUID(key.SubjectID)),
			goqu.I("source").Eq(string(key.Source)),
			goqu.I("source_name").Eq(key.SourceName),
		).
		Limit(1).
		Executor().ScanValContext(ctx, &id)
	if err != nil {
		return false, fmt.Errorf("could not check exposure existence in pg: %w", err)
	}

	return found, nil
}

// StoreExposure inserts the exposure unless its key is already taken, in which
// case it returns nil. The unique constraint settles concurrent inserts.
func (p *PgSQL) StoreExposure(ctx context.Context, exposure domain.Exposure) (*domain.Exposure, error) {
	var row PgExposure
	row.FromDomain(exposure)

	var stored PgExposure
	found, err := p.Builder.Insert(exposuresTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgExposure{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store exposure into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return stored.ToDomain(), nil
}
