// Package notify delivers operator alerts about new exposures and finished
// scans. Delivery is fire-and-forget: callers never see delivery errors.
//
//go:generate mockgen -package mocknotify -source=interface.go -destination=mock/mocknotify.go *
package notify

import (
	"context"
	"privacymon/pkg/domain"
)

// ScanSummary is the content of a scan-completion alert.
type ScanSummary struct {
	Kind         domain.ScanKind
	Status       domain.ScanStatus
	Subjects     int
	NewExposures int
	Errors       []string
}

// Notifier queues alerts. Implementations must not block on delivery.
type Notifier interface {
	// NotifyNewFindings alerts about exposures newly recorded for one subject.
	NotifyNewFindings(ctx context.Context, subjectName string, runner domain.RunnerKind, findings []domain.Finding)
	// NotifyScanComplete alerts about a finalized scan.
	NotifyScanComplete(ctx context.Context, summary ScanSummary)
}

// Message is a rendered alert.
type Message struct {
	Subject string
	Text    string
	// HTML is an optional alternative body.
	HTML string
}

// Sender delivers a rendered message to the configured recipient.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
