package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"privacymon/pkg/domain"
	"privacymon/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	scansTable = "scans"
)

func (p *PgSQL) StoreScan(ctx context.Context, scan domain.Scan) (*domain.Scan, error) {
	var row PgScan
	row.FromDomain(scan)

	var stored PgScan
	if _, err := p.Builder.Insert(scansTable).
		Rows(row).
		Returning(&PgScan{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store scan into pg: %w", err)
	}

	return stored.ToDomain()
}

// ScanByID returns a scan by its ID, or nil when it does not exist.
func (p *PgSQL) ScanByID(ctx context.Context, id domain.ScanID) (*domain.Scan, error) {
	var row PgScan
	found, err := p.Builder.From(scansTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scan by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Scans returns scans ordered by started_at DESC, id DESC, resuming after the
// optional cursor, with a cursor for the next page.
func (p *PgSQL) Scans(ctx context.Context, cursor *storage.ScanCursor, limit uint) (storage.Scans, error) {
	var w []goqu.Expression
	if cursor != nil {
		w = append(w, goqu.L("(started_at, id) < (?, ?)", cursor.StartedAt, uuid.UUID(cursor.ID)))
	}

	// fetch one extra to determine if there is a next page
	ds := p.Builder.From(scansTable).
		Where(w...).
		Order(goqu.I("started_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgScan
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Scans{}, fmt.Errorf("could not fetch scans from pg: %w", err)
	}

	var nextCursor *storage.ScanCursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if len(rows) > 0 {
			last := rows[len(rows)-1]
			nextCursor = &storage.ScanCursor{StartedAt: last.StartedAt, ID: domain.ScanID(last.ID)}
		}
	}

	scans, err := pgScansToDomain(rows)
	if err != nil {
		return storage.Scans{}, err
	}

	return storage.Scans{Scans: scans, NextCursor: nextCursor}, nil
}

// UpdateScanByID applies the non-empty updates and sets updated_at. With
// FromStatus set the update only matches scans in that status.
func (p *PgSQL) UpdateScanByID(ctx context.Context,
	id domain.ScanID,
	updates storage.ScanUpdates) (*domain.Scan, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.ErrorMessage != nil {
		if *updates.ErrorMessage == "" {
			rec["error_message"] = goqu.L("NULL")
		} else {
			rec["error_message"] = *updates.ErrorMessage
		}
	}
	if updates.CompletedAt != nil {
		rec["completed_at"] = *updates.CompletedAt
	}

	w := []goqu.Expression{goqu.I("id").Eq(uuid.UUID(id))}
	if updates.FromStatus != "" {
		w = append(w, goqu.I("status").Eq(string(updates.FromStatus)))
	}

	var row PgScan
	found, err := p.Builder.Update(scansTable).
		Set(rec).
		Where(w...).
		Returning(&PgScan{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update scan in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// IncrementScanExposures adds delta to exposures_found in SQL so concurrent
// runners never lose each other's counts.
func (p *PgSQL) IncrementScanExposures(ctx context.Context, id domain.ScanID, delta int) error {
	if delta == 0 {
		return nil
	}

	_, err := p.Builder.Update(scansTable).
		Set(goqu.Record{
			"exposures_found": goqu.L("exposures_found + ?", delta),
			"updated_at":      goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not increment scan exposures in pg: %w", err)
	}

	return nil
}

// ReportScanRunner clears the runner's pending column and merges the report in
// a single statement. The pending column in the WHERE clause makes a second
// report for the same runner match nothing.
func (p *PgSQL) ReportScanRunner(ctx context.Context,
	id domain.ScanID,
	report storage.RunnerReport) (*domain.Scan, error) {
	column, ok := pendingColumns[report.Runner]
	if !ok {
		return nil, fmt.Errorf("unknown runner %q", report.Runner)
	}

	errs := report.Errors
	if errs == nil {
		errs = []string{}
	}
	encoded, err := json.Marshal(errs)
	if err != nil {
		return nil, fmt.Errorf("could not marshal runner errors: %w", err)
	}

	var row PgScan
	found, err := p.Builder.Update(scansTable).
		Set(goqu.Record{
			column:             false,
			"errors":           goqu.L("errors || ?::jsonb", string(encoded)),
			"failed":           goqu.L("failed OR ?", report.Failed),
			"subjects_scanned": goqu.L("GREATEST(subjects_scanned, ?)", report.Subjects),
			"updated_at":       goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I(column).IsTrue(),
		).
		Returning(&PgScan{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not report scan runner in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
