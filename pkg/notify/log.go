package notify

import (
	"context"
	"privacymon/pkg/domain"
	"privacymon/pkg/logger"

	"go.uber.org/zap"
)

// LogSender writes messages to the logger instead of delivering them. It is
// used when no mail transport is configured.
type LogSender struct{}

var _ Sender = LogSender{}

func (LogSender) Send(ctx context.Context, msg Message) error {
	logger.Info(ctx, "notification", zap.String("subject", msg.Subject), zap.String("body", msg.Text))

	return nil
}

// Discard is a Notifier that drops every alert.
type Discard struct{}

var _ Notifier = Discard{}

func (Discard) NotifyNewFindings(context.Context, string, domain.RunnerKind, []domain.Finding) {}

func (Discard) NotifyScanComplete(context.Context, ScanSummary) {}
