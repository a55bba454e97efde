package worker_test

import (
	"context"
	"errors"
	"privacymon/internal/scanning"
	mockscanning "privacymon/internal/scanning/mock"
	"privacymon/internal/worker"
	"privacymon/pkg/domain"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func makeScheduledJob(kind domain.ScanKind) *river.Job[scanning.ScheduledScanArgs] {
	return &river.Job[scanning.ScheduledScanArgs]{
		JobRow: &rivertype.JobRow{ID: 42},
		Args:   scanning.ScheduledScanArgs{ScanKind: kind},
	}
}

func TestScheduledScanWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	coordinator := mockscanning.NewMockCoordinator(ctrl)
	w := worker.NewScheduledScanWorker(coordinator)

	coordinator.EXPECT().StartScan(gomock.Any(), domain.ScanKindBreach, nil).
		Return(&domain.Scan{Kind: domain.ScanKindBreach, Status: domain.ScanStatusPending}, nil)

	require.NoError(t, w.Work(context.Background(), makeScheduledJob(domain.ScanKindBreach)))
}

func TestScheduledScanWorker_Work_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	coordinator := mockscanning.NewMockCoordinator(ctrl)
	w := worker.NewScheduledScanWorker(coordinator)

	coordinator.EXPECT().StartScan(gomock.Any(), domain.ScanKindFull, nil).Return(nil, errors.New("db down"))

	require.Error(t, w.Work(context.Background(), makeScheduledJob(domain.ScanKindFull)))
}
