package storage

import (
	"context"
	"errors"
	"fmt"
	"privacymon/pkg/domain"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ScanUpdates describes a set of optional fields that can be applied to an
// existing scan during an update. Only non-empty fields will be updated.
type ScanUpdates struct {
	// Status is the new status to set for the scan.
	Status domain.ScanStatus
	// FromStatus, when set, restricts the update to scans currently in this status.
	FromStatus domain.ScanStatus
	// ErrorMessage, when provided, replaces the error summary. An empty string
	// clears it.
	ErrorMessage *string
	// CompletedAt, when provided, sets the completion timestamp.
	CompletedAt *time.Time
}

// RunnerReport is what a runner contributes to its scan once it finishes.
type RunnerReport struct {
	Runner domain.RunnerKind
	// Subjects is the number of subjects the runner loaded.
	Subjects int
	// Errors are appended to the scan's collected errors.
	Errors []string
	// Failed marks a hard failure; it is sticky for the scan.
	Failed bool
}

// ScanCursor is the position of the last scan of a page. Scans sharing a
// start time are ordered by ID, so the pair is unique.
type ScanCursor struct {
	StartedAt time.Time
	ID        domain.ScanID
}

// String encodes the cursor as "<RFC 3339 start time>_<scan id>".
func (c ScanCursor) String() string {
	return c.StartedAt.UTC().Format(time.RFC3339Nano) + "_" + c.ID.String()
}

// ParseScanCursor decodes a cursor produced by ScanCursor.String.
func ParseScanCursor(s string) (ScanCursor, error) {
	ts, id, ok := strings.Cut(s, "_")
	if !ok {
		return ScanCursor{}, errors.New("cursor has no scan id")
	}
	startedAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ScanCursor{}, fmt.Errorf("could not parse cursor time: %w", err)
	}
	scanID, err := uuid.Parse(id)
	if err != nil {
		return ScanCursor{}, fmt.Errorf("could not parse cursor scan id: %w", err)
	}

	return ScanCursor{StartedAt: startedAt, ID: domain.ScanID(scanID)}, nil
}

// Scans groups a page of scans together with an optional NextCursor used for
// pagination.
type Scans struct {
	// Scans contains the current page of scan records.
	Scans []domain.Scan
	// NextCursor is the position to resume from. It is nil on the last page.
	NextCursor *ScanCursor
}

// ScanStorage defines persistence of scans. Counter and error-list changes are
// applied atomically by the backend, never as read-modify-write in Go.
type ScanStorage interface {
	// StoreScan inserts a scan and returns the stored row including generated fields.
	StoreScan(ctx context.Context, scan domain.Scan) (*domain.Scan, error)
	// ScanByID fetches a scan by its ID. Returns nil when not found.
	ScanByID(ctx context.Context, ID domain.ScanID) (*domain.Scan, error)
	// Scans returns a page of scans ordered after the optional cursor,
	// newest first with ties broken by ID, limited by limit.
	Scans(ctx context.Context, cursor *ScanCursor, limit uint) (Scans, error)
	// UpdateScanByID applies updates to a single scan and returns the updated
	// row, or nil when no scan matched (including a FromStatus mismatch).
	UpdateScanByID(ctx context.Context, ID domain.ScanID, updates ScanUpdates) (*domain.Scan, error)
	// IncrementScanExposures adds delta to the scan's exposures counter.
	IncrementScanExposures(ctx context.Context, ID domain.ScanID, delta int) error
	// ReportScanRunner clears the runner's pending mark and merges the report
	// into the scan, returning the updated row. It returns nil when the runner
	// is not pending anymore, so repeated reports are ignored.
	ReportScanRunner(ctx context.Context, ID domain.ScanID, report RunnerReport) (*domain.Scan, error)
}
