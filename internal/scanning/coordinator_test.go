package scanning_test

import (
	"context"
	"errors"
	"privacymon/internal/scanning"
	"privacymon/pkg/domain"
	"privacymon/pkg/notify"
	mocknotify "privacymon/pkg/notify/mock"
	"privacymon/pkg/serrors"
	"privacymon/pkg/storage"
	mockstorage "privacymon/pkg/storage/mock"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"

	"go.uber.org/mock/gomock"
)

func newTestCoordinator(t *testing.T, st storage.Storage) (*mocknotify.MockNotifier, scanning.Coordinator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	notifier := mocknotify.NewMockNotifier(ctrl)

	return notifier, scanning.NewCoordinator(st, notifier, nil, scanning.Options{Retry: scanning.DefaultRetryPolicy()})
}

// expectWithTx wires Storage.WithTx to run the callback against a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestCoordinator_StartScan(t *testing.T) {
	st := newMemStorage()
	_, c := newTestCoordinator(t, st)

	subjectID := domain.SubjectID(uuid.New())
	scan, err := c.StartScan(context.Background(), domain.ScanKindFull, []domain.SubjectID{subjectID})
	require.NoError(t, err)
	require.Equal(t, domain.ScanStatusPending, scan.Status)
	require.Equal(t, domain.ScanKindFull, scan.Kind)
	require.Equal(t, []domain.RunnerKind{domain.RunnerKindBreach, domain.RunnerKindDataBroker}, scan.PendingRunners)

	require.Len(t, st.jobs, 2)
	for i, runner := range []domain.RunnerKind{domain.RunnerKindBreach, domain.RunnerKindDataBroker} {
		args, ok := st.jobs[i].(scanning.RunnerArgs)
		require.True(t, ok)
		require.Equal(t, uuid.UUID(scan.ID), args.ScanID)
		require.Equal(t, runner, args.Runner)
		require.Equal(t, []domain.SubjectID{subjectID}, args.Subjects())
		require.Equal(t, scanning.DefaultMaxAttempts, args.InsertOpts().MaxAttempts)
	}
}

func TestCoordinator_StartScan_InvalidKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	_, c := newTestCoordinator(t, st)

	_, err := c.StartScan(context.Background(), "weekly", nil)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCoordinator_StartScan_JobFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	_, c := newTestCoordinator(t, st)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreScan(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, scan domain.Scan) (*domain.Scan, error) {
				scan.ID = domain.ScanID(uuid.New())

				return &scan, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), gomock.AssignableToTypeOf(scanning.RunnerArgs{}), gomock.Nil()).
			Return(false, errors.New("queue down"))
	})

	scan, err := c.StartScan(context.Background(), domain.ScanKindBreach, nil)
	require.ErrorContains(t, err, "queue down")
	require.Nil(t, scan)
}

func TestCoordinator_RunnerStarted(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	_, c := newTestCoordinator(t, st)

	scanID := domain.ScanID(uuid.New())
	st.EXPECT().UpdateScanByID(gomock.Any(), scanID, storage.ScanUpdates{
		Status:     domain.ScanStatusRunning,
		FromStatus: domain.ScanStatusPending,
	}).Return(nil, nil)

	require.NoError(t, c.RunnerStarted(context.Background(), scanID))
}

func TestCoordinator_ReportRunner_FinalizesAfterLastRunner(t *testing.T) {
	st := newMemStorage()
	notifier, c := newTestCoordinator(t, st)
	ctx := context.Background()

	scan, err := c.StartScan(ctx, domain.ScanKindFull, nil)
	require.NoError(t, err)
	require.NoError(t, c.RunnerStarted(ctx, scan.ID))
	require.Equal(t, domain.ScanStatusRunning, st.scan(scan.ID).Status)

	// both runners add to the shared counter while running
	require.NoError(t, st.IncrementScanExposures(ctx, scan.ID, 2))
	require.NoError(t, st.IncrementScanExposures(ctx, scan.ID, 3))

	final, err := c.ReportRunner(ctx, scan.ID, domain.RunnerKindBreach,
		scanning.Outcome{Status: scanning.OutcomeCompleted, Subjects: 2, NewExposures: 2, Errors: []string{"Jane: boom"}}, nil)
	require.NoError(t, err)
	require.Nil(t, final)
	require.Equal(t, domain.ScanStatusRunning, st.scan(scan.ID).Status)

	notifier.EXPECT().NotifyScanComplete(gomock.Any(), notify.ScanSummary{
		Kind:         domain.ScanKindFull,
		Status:       domain.ScanStatusCompleted,
		Subjects:     2,
		NewExposures: 5,
		Errors:       []string{"Jane: boom"},
	})

	final, err = c.ReportRunner(ctx, scan.ID, domain.RunnerKindDataBroker,
		scanning.Outcome{Status: scanning.OutcomeCompleted, Subjects: 2, NewExposures: 3}, nil)
	require.NoError(t, err)
	require.NotNil(t, final)
	require.Equal(t, domain.ScanStatusCompleted, final.Status)
	require.Equal(t, 5, final.ExposuresFound)
	require.Equal(t, "Jane: boom", final.ErrorMessage)
	require.False(t, final.CompletedAt.IsZero())

	// a redelivered report changes nothing
	again, err := c.ReportRunner(ctx, scan.ID, domain.RunnerKindDataBroker,
		scanning.Outcome{Status: scanning.OutcomeCompleted, Errors: []string{"late"}}, nil)
	require.NoError(t, err)
	require.Nil(t, again)
	require.Equal(t, []string{"Jane: boom"}, st.scan(scan.ID).Errors)
}

func TestCoordinator_ReportRunner_HardFailure(t *testing.T) {
	st := newMemStorage()
	notifier, c := newTestCoordinator(t, st)
	ctx := context.Background()

	scan, err := c.StartScan(ctx, domain.ScanKindBreach, nil)
	require.NoError(t, err)

	notifier.EXPECT().NotifyScanComplete(gomock.Any(), gomock.Cond(func(s notify.ScanSummary) bool {
		return s.Status == domain.ScanStatusFailed && len(s.Errors) == 5
	}))

	runErr := serrors.With(serrors.ErrUnauthorized, "invalid HIBP API key")
	outcome := scanning.Outcome{Errors: []string{"e1", "e2", "e3", "e4", "e5"}}
	final, err := c.ReportRunner(ctx, scan.ID, domain.RunnerKindBreach, outcome, runErr)
	require.NoError(t, err)
	require.Equal(t, domain.ScanStatusFailed, final.Status)
	require.Equal(t, "invalid HIBP API key; e1; e2", final.ErrorMessage)
	require.Len(t, final.Errors, 6)
}

func TestCoordinator_ReportRunner_NoSubjectsFinalizesQuietly(t *testing.T) {
	st := newMemStorage()
	_, c := newTestCoordinator(t, st)
	ctx := context.Background()

	scan, err := c.StartScan(ctx, domain.ScanKindDataBroker, nil)
	require.NoError(t, err)

	final, err := c.ReportRunner(ctx, scan.ID, domain.RunnerKindDataBroker,
		scanning.Outcome{Status: scanning.OutcomeNoSubjects}, nil)
	require.NoError(t, err)
	require.Equal(t, domain.ScanStatusCompleted, final.Status)
	require.Equal(t, 0, final.ExposuresFound)
	require.Empty(t, final.ErrorMessage)
}

func TestSummarize(t *testing.T) {
	require.Empty(t, scanning.Summarize(nil))
	require.Equal(t, "a; b; c", scanning.Summarize([]string{"a", "b", "c", "d"}))

	long := scanning.Summarize([]string{strings.Repeat("x", 400), strings.Repeat("y", 400)})
	require.Len(t, long, 500)
	require.True(t, strings.HasPrefix(long, strings.Repeat("x", 400)+"; y"))
}

func TestCoordinator_Scan(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	_, c := newTestCoordinator(t, st)

	id := domain.ScanID(uuid.New())
	st.EXPECT().ScanByID(gomock.Any(), id).Return(nil, nil)
	_, err := c.Scan(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().ScanByID(gomock.Any(), id).Return(&domain.Scan{ID: id}, nil)
	scan, err := c.Scan(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, id, scan.ID)
}

func TestCoordinator_Scans(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	_, c := newTestCoordinator(t, st)

	cursor := storage.ScanCursor{
		StartedAt: time.Date(2025, 3, 4, 5, 6, 7, 123456000, time.UTC),
		ID:        domain.ScanID(uuid.MustParse("7f1c1d3e-9a53-4c55-9d8c-2b8e52f0d6a1")),
	}
	next := storage.ScanCursor{
		StartedAt: cursor.StartedAt.Add(-time.Hour),
		ID:        domain.ScanID(uuid.MustParse("00000000-0000-4000-8000-000000000001")),
	}
	st.EXPECT().Scans(gomock.Any(), gomock.Any(), uint(10)).DoAndReturn(
		func(_ context.Context, after *storage.ScanCursor, _ uint) (storage.Scans, error) {
			require.NotNil(t, after)
			require.True(t, cursor.StartedAt.Equal(after.StartedAt))
			require.Equal(t, cursor.ID, after.ID)

			return storage.Scans{Scans: []domain.Scan{{}}, NextCursor: &next}, nil
		})

	scans, nextCursor, err := c.Scans(context.Background(), cursor.String(), 10)
	require.NoError(t, err)
	require.Len(t, scans, 1)
	require.Equal(t, "2025-03-04T04:06:07.123456Z_00000000-0000-4000-8000-000000000001", nextCursor)

	st.EXPECT().Scans(gomock.Any(), (*storage.ScanCursor)(nil), uint(10)).Return(storage.Scans{}, nil)
	_, nextCursor, err = c.Scans(context.Background(), "", 10)
	require.NoError(t, err)
	require.Empty(t, nextCursor)

	for _, bad := range []string{"yesterday", "2025-03-04T04:06:07Z", "2025-03-04T04:06:07Z_nope", "soon_" + next.ID.String()} {
		_, _, err = c.Scans(context.Background(), bad, 10)
		require.ErrorIs(t, err, serrors.ErrBadRequest, bad)
	}
}

func TestCoordinator_Scans_pagesThroughEqualStartTimes(t *testing.T) {
	st := newMemStorage()
	_, c := newTestCoordinator(t, st)

	startedAt := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	for range 5 {
		id := domain.ScanID(uuid.New())
		st.scans[id] = domain.Scan{ID: id, Kind: domain.ScanKindFull, StartedAt: startedAt}
	}

	seen := map[domain.ScanID]bool{}
	cursor := ""
	for {
		scans, next, err := c.Scans(context.Background(), cursor, 2)
		require.NoError(t, err)
		for _, s := range scans {
			require.False(t, seen[s.ID], "scan %s listed twice", s.ID)
			seen[s.ID] = true
		}
		if next == "" {
			break
		}
		cursor = next
	}
	require.Len(t, seen, 5)
}

func TestRunnerArgs(t *testing.T) {
	args := scanning.RunnerArgs{ScanID: uuid.New(), Runner: domain.RunnerKindBreach}
	require.Equal(t, "ScanRunnerJob", args.Kind())
	opts := args.InsertOpts()
	require.True(t, opts.UniqueOpts.ByArgs)
	require.Contains(t, opts.UniqueOpts.ByState, rivertype.JobStateRunning)
	require.Empty(t, args.Subjects())

	require.Equal(t, "ScheduledScanJob", scanning.ScheduledScanArgs{ScanKind: domain.ScanKindFull}.Kind())
}
