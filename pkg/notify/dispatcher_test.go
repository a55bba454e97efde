package notify_test

import (
	"context"
	"errors"
	"os"
	"privacymon/pkg/domain"
	"privacymon/pkg/logger"
	"privacymon/pkg/notify"
	mocknotify "privacymon/pkg/notify/mock"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocknotify.NewMockSender(ctrl)

	gomock.InOrder(
		sender.EXPECT().Send(gomock.Any(), gomock.Cond(func(m notify.Message) bool {
			return strings.Contains(m.Subject, "new exposure(s) detected for Jane Doe")
		})).Return(nil),
		sender.EXPECT().Send(gomock.Any(), gomock.Cond(func(m notify.Message) bool {
			return strings.Contains(m.Subject, "Breach scan complete")
		})).Return(errors.New("smtp down")),
	)

	d := notify.NewDispatcher(sender, notify.Options{Brand: "Privacy Monitor"})
	d.Start(context.Background())

	d.NotifyNewFindings(context.Background(), "Jane Doe", domain.RunnerKindBreach, findings(1))
	d.NotifyScanComplete(context.Background(), notify.ScanSummary{Kind: domain.ScanKindBreach})
	d.Stop()
}

func TestDispatcher_IgnoresEmptyFindings(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocknotify.NewMockSender(ctrl)

	d := notify.NewDispatcher(sender, notify.Options{})
	d.Start(context.Background())
	d.NotifyNewFindings(context.Background(), "Jane Doe", domain.RunnerKindBreach, nil)
	d.Stop()
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocknotify.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	d := notify.NewDispatcher(sender, notify.Options{QueueSize: 2})
	for range 5 {
		d.NotifyScanComplete(context.Background(), notify.ScanSummary{Kind: domain.ScanKindFull})
	}

	d.Start(context.Background())
	d.Stop()
}

func TestDispatcher_DropsAfterStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocknotify.NewMockSender(ctrl)

	d := notify.NewDispatcher(sender, notify.Options{})
	d.Start(context.Background())
	d.Stop()
	d.Stop()

	require.NotPanics(t, func() {
		d.NotifyScanComplete(context.Background(), notify.ScanSummary{Kind: domain.ScanKindFull})
	})
}

func TestLogSender(t *testing.T) {
	require.NoError(t, notify.LogSender{}.Send(context.Background(), notify.Message{Subject: "s", Text: "t"}))
}
