package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExposureID uniquely identifies a recorded exposure.
type ExposureID uuid.UUID

// ExposureSource categorizes where personal data was found.
type ExposureSource string

const (
	ExposureSourceDataBroker   ExposureSource = "data_broker"
	ExposureSourceBreach       ExposureSource = "breach"
	ExposureSourcePeopleSearch ExposureSource = "people_search"
	ExposureSourceOther        ExposureSource = "other"
)

// ExposureStatus tracks an exposure through the removal workflow. Scans only
// ever create exposures in ExposureStatusDetected.
type ExposureStatus string

const (
	ExposureStatusDetected          ExposureStatus = "detected"
	ExposureStatusRemovalRequested  ExposureStatus = "removal_requested"
	ExposureStatusRemovalInProgress ExposureStatus = "removal_in_progress"
	ExposureStatusRemoved           ExposureStatus = "removed"
	ExposureStatusRemovalFailed     ExposureStatus = "removal_failed"
)

// ExposureKey is the identity used for de-duplication: at most one exposure
// exists per subject, source and source name.
type ExposureKey struct {
	SubjectID  SubjectID
	Source     ExposureSource
	SourceName string
}

// Exposure is a persisted record that a subject's data was found at a source.
type Exposure struct {
	ID        ExposureID `json:"id"`
	SubjectID SubjectID  `json:"subjectId"`

	Source      ExposureSource `json:"source"`
	SourceName  string         `json:"sourceName"`
	SourceURL   string         `json:"sourceUrl,omitempty"`
	DataExposed string         `json:"dataExposed,omitempty"`

	Status           ExposureStatus `json:"status"`
	RemovalRequestID string         `json:"removalRequestId,omitempty"`

	DetectedAt time.Time `json:"detectedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Key returns the de-duplication key of the exposure.
func (e Exposure) Key() ExposureKey {
	return ExposureKey{SubjectID: e.SubjectID, Source: e.Source, SourceName: e.SourceName}
}

// Finding is a candidate exposure produced by a runner before de-duplication.
type Finding struct {
	Source      ExposureSource
	SourceName  string
	SourceURL   string
	DataExposed string
}

// Key returns the de-duplication key the finding would have for subjectID.
func (f Finding) Key(subjectID SubjectID) ExposureKey {
	return ExposureKey{SubjectID: subjectID, Source: f.Source, SourceName: f.SourceName}
}

// Exposure converts the finding into a new exposure in the detected state.
func (f Finding) Exposure(subjectID SubjectID) Exposure {
	return Exposure{
		SubjectID:   subjectID,
		Source:      f.Source,
		SourceName:  f.SourceName,
		SourceURL:   f.SourceURL,
		DataExposed: f.DataExposed,
		Status:      ExposureStatusDetected,
	}
}
