package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ScanID uniquely identifies a scan.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ScanID uuid.UUID

func (id ScanID) String() string { return uuid.UUID(id).String() }

// ScanKind selects which runners a scan dispatches.
type ScanKind string

const (
	// ScanKindFull runs every runner.
	ScanKindFull ScanKind = "full"
	// ScanKindBreach only queries breach databases.
	ScanKindBreach ScanKind = "breach"
	// ScanKindDataBroker only probes people-search sites.
	ScanKindDataBroker ScanKind = "data_broker"
)

// RunnerKind names a source-specific scan runner.
type RunnerKind string

const (
	RunnerKindBreach     RunnerKind = "breach"
	RunnerKindDataBroker RunnerKind = "data_broker"
)

// Runners returns the runners a scan of this kind dispatches, or nil for an
// unknown kind.
func (k ScanKind) Runners() []RunnerKind {
	switch k {
	case ScanKindFull:
		return []RunnerKind{RunnerKindBreach, RunnerKindDataBroker}
	case ScanKindBreach:
		return []RunnerKind{RunnerKindBreach}
	case ScanKindDataBroker:
		return []RunnerKind{RunnerKindDataBroker}
	default:
		return nil
	}
}

// Valid reports whether k is a known scan kind.
func (k ScanKind) Valid() bool { return len(k.Runners()) > 0 }

// ScanStatus represents the lifecycle state of a scan.
// Transitions are pending -> running -> completed | failed.
type ScanStatus string

const (
	// ScanStatusPending indicates the scan was created but no runner has started.
	ScanStatusPending ScanStatus = "pending"
	// ScanStatusRunning indicates at least one runner has started.
	ScanStatusRunning ScanStatus = "running"
	// ScanStatusCompleted indicates every runner finished without a hard failure.
	// Per-item errors may still be present in ErrorMessage.
	ScanStatusCompleted ScanStatus = "completed"
	// ScanStatusFailed indicates a runner aborted on an authentication fault or
	// exhausted its retries.
	ScanStatusFailed ScanStatus = "failed"
)

// Terminal reports whether no further transitions are possible.
func (s ScanStatus) Terminal() bool {
	return s == ScanStatusCompleted || s == ScanStatusFailed
}

// Scan is one orchestrated run of one or more runners over a set of subjects.
type Scan struct {
	// ID is the unique identifier of the scan.
	ID   ScanID   `json:"id"`
	Kind ScanKind `json:"kind"`
	// Status is the current lifecycle state of the scan.
	Status ScanStatus `json:"status"`

	// ExposuresFound counts exposures newly created by this scan.
	ExposuresFound int `json:"exposuresFound"`
	// SubjectsScanned is the number of subjects the runners loaded.
	SubjectsScanned int `json:"subjectsScanned"`
	// ErrorMessage summarizes the first collected errors once the scan is finalized.
	ErrorMessage string `json:"errorMessage,omitempty"`
	// Errors holds every error reported by the runners, in report order.
	Errors []string `json:"-"`
	// Failed is set once any runner reported a hard failure.
	Failed bool `json:"-"`
	// PendingRunners lists the runners that have not reported yet.
	PendingRunners []RunnerKind `json:"-"`

	StartedAt   time.Time `json:"startedAt"`
	CompletedAt time.Time `json:"completedAt"`
	UpdatedAt   time.Time `json:"-"`
}

// RunnerPending reports whether runner has not reported its outcome yet.
func (s Scan) RunnerPending(runner RunnerKind) bool {
	return slices.Contains(s.PendingRunners, runner)
}
