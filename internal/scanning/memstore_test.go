package scanning_test

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"privacymon/pkg/domain"
	"privacymon/pkg/storage"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

// memStorage is an in-memory storage.Storage. WithTx restores exposures and
// scans when the callback fails.
type memStorage struct {
	mu        sync.Mutex
	subjects  []domain.Subject
	exposures map[domain.ExposureKey]domain.Exposure
	scans     map[domain.ScanID]domain.Scan
	jobs      []river.JobArgs

	// storeErr, when set, fails StoreExposure for the matching source name.
	storeErr map[string]error
}

var _ storage.Storage = (*memStorage)(nil)

func newMemStorage(subjects ...domain.Subject) *memStorage {
	return &memStorage{
		subjects:  subjects,
		exposures: map[domain.ExposureKey]domain.Exposure{},
		scans:     map[domain.ScanID]domain.Scan{},
		storeErr:  map[string]error{},
	}
}

func (m *memStorage) Close() error { return nil }

func (m *memStorage) Begin(context.Context) (storage.TxStorage, error) {
	return nil, errors.New("not supported")
}

func (m *memStorage) WithTx(_ context.Context, cb func(storage.AllStorage) error) error {
	m.mu.Lock()
	exposures := maps.Clone(m.exposures)
	scans := maps.Clone(m.scans)
	jobs := slices.Clone(m.jobs)
	m.mu.Unlock()

	if err := cb(m); err != nil {
		m.mu.Lock()
		m.exposures, m.scans, m.jobs = exposures, scans, jobs
		m.mu.Unlock()

		return err
	}

	return nil
}

func (m *memStorage) StoreSubjects(_ context.Context, subjects ...domain.Subject) ([]domain.Subject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range subjects {
		if subjects[i].ID == (domain.SubjectID{}) {
			subjects[i].ID = domain.SubjectID(uuid.New())
		}
	}
	m.subjects = append(m.subjects, subjects...)

	return subjects, nil
}

func (m *memStorage) Subjects(_ context.Context, ids []domain.SubjectID) ([]domain.Subject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(ids) == 0 {
		return slices.Clone(m.subjects), nil
	}

	var out []domain.Subject
	for _, s := range m.subjects {
		if slices.Contains(ids, s.ID) {
			out = append(out, s)
		}
	}

	return out, nil
}

func (m *memStorage) ExposureExists(_ context.Context, key domain.ExposureKey) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.exposures[key]

	return ok, nil
}

func (m *memStorage) StoreExposure(_ context.Context, e domain.Exposure) (*domain.Exposure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.storeErr[e.SourceName]; err != nil {
		return nil, err
	}
	if _, ok := m.exposures[e.Key()]; ok {
		return nil, nil
	}
	e.ID = domain.ExposureID(uuid.New())
	e.DetectedAt = time.Now()
	m.exposures[e.Key()] = e

	return &e, nil
}

func (m *memStorage) exposureList() []domain.Exposure {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Collect(maps.Values(m.exposures))
}

func (m *memStorage) StoreScan(_ context.Context, scan domain.Scan) (*domain.Scan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	scan.ID = domain.ScanID(uuid.New())
	scan.StartedAt = time.Now()
	m.scans[scan.ID] = scan

	return &scan, nil
}

func (m *memStorage) ScanByID(_ context.Context, id domain.ScanID) (*domain.Scan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	scan, ok := m.scans[id]
	if !ok {
		return nil, nil
	}

	return &scan, nil
}

func newerScan(a, b domain.Scan) int {
	if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
		return c
	}

	return bytes.Compare(b.ID[:], a.ID[:])
}

func (m *memStorage) Scans(_ context.Context, cursor *storage.ScanCursor, limit uint) (storage.Scans, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Scan
	for _, s := range m.scans {
		if cursor == nil || newerScan(domain.Scan{StartedAt: cursor.StartedAt, ID: cursor.ID}, s) < 0 {
			out = append(out, s)
		}
	}
	slices.SortFunc(out, newerScan)

	var next *storage.ScanCursor
	if uint(len(out)) > limit {
		out = out[:limit]
		if len(out) > 0 {
			last := out[len(out)-1]
			next = &storage.ScanCursor{StartedAt: last.StartedAt, ID: last.ID}
		}
	}

	return storage.Scans{Scans: out, NextCursor: next}, nil
}

func (m *memStorage) UpdateScanByID(_ context.Context,
	id domain.ScanID,
	updates storage.ScanUpdates,
) (*domain.Scan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	scan, ok := m.scans[id]
	if !ok || (updates.FromStatus != "" && scan.Status != updates.FromStatus) {
		return nil, nil
	}
	if updates.Status != "" {
		scan.Status = updates.Status
	}
	if updates.ErrorMessage != nil {
		scan.ErrorMessage = *updates.ErrorMessage
	}
	if updates.CompletedAt != nil {
		scan.CompletedAt = *updates.CompletedAt
	}
	m.scans[id] = scan

	return &scan, nil
}

func (m *memStorage) IncrementScanExposures(_ context.Context, id domain.ScanID, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	scan, ok := m.scans[id]
	if !ok {
		return nil
	}
	scan.ExposuresFound += delta
	m.scans[id] = scan

	return nil
}

func (m *memStorage) ReportScanRunner(_ context.Context,
	id domain.ScanID,
	report storage.RunnerReport,
) (*domain.Scan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	scan, ok := m.scans[id]
	if !ok || !scan.RunnerPending(report.Runner) {
		return nil, nil
	}
	scan.PendingRunners = slices.DeleteFunc(slices.Clone(scan.PendingRunners), func(r domain.RunnerKind) bool {
		return r == report.Runner
	})
	scan.Errors = append(slices.Clone(scan.Errors), report.Errors...)
	scan.Failed = scan.Failed || report.Failed
	scan.SubjectsScanned = max(scan.SubjectsScanned, report.Subjects)
	m.scans[id] = scan

	return &scan, nil
}

func (m *memStorage) AddJob(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.jobs = append(m.jobs, args)

	return true, nil
}

func (m *memStorage) scan(id domain.ScanID) domain.Scan {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.scans[id]
}
