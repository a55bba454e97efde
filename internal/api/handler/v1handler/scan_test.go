package v1handler_test

import (
	"errors"
	"net/http"
	"privacymon/internal/api/handler/v1handler"
	"privacymon/pkg/domain"
	"privacymon/pkg/serrors"
	"testing"
	"time"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testScanID    = uuid.MustParse("6b1f0a8e-2f57-4d6c-9a5c-0c2f9a8d7e11") //nolint: gochecknoglobals
	testSubjectID = uuid.MustParse("9d0c1b2a-3e4f-4a5b-8c7d-6e5f4a3b2c1d") //nolint: gochecknoglobals
	startedAt     = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)          //nolint: gochecknoglobals
)

func testScan(status domain.ScanStatus) *domain.Scan {
	return &domain.Scan{
		ID:              domain.ScanID(testScanID),
		Kind:            domain.ScanKindBreach,
		Status:          status,
		ExposuresFound:  2,
		SubjectsScanned: 1,
		StartedAt:       startedAt,
	}
}

func TestEncodeScan(t *testing.T) {
	s := testScan(domain.ScanStatusFailed)
	s.ErrorMessage = "HIBP API key invalid"
	s.CompletedAt = startedAt.Add(time.Minute)
	s.Errors = []string{"HIBP API key invalid"}

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	v1handler.EncodeScan(e, s)

	require.JSONEq(t, `{
		"id": "6b1f0a8e-2f57-4d6c-9a5c-0c2f9a8d7e11",
		"kind": "breach",
		"status": "failed",
		"exposuresFound": 2,
		"subjectsScanned": 1,
		"errorMessage": "HIBP API key invalid",
		"startedAt": "2026-03-01T10:00:00Z",
		"completedAt": "2026-03-01T10:01:00Z"
	}`, e.String())
}

func TestDecodeCreateScanRequest(t *testing.T) {
	req, err := v1handler.DecodeCreateScanRequest(jx.DecodeStr(
		`{"kind":"data_broker","subjectIds":["9d0c1b2a-3e4f-4a5b-8c7d-6e5f4a3b2c1d"],"extra":{"a":1}}`))
	require.NoError(t, err)
	require.Equal(t, domain.ScanKindDataBroker, req.Kind)
	require.Equal(t, []domain.SubjectID{domain.SubjectID(testSubjectID)}, req.SubjectIDs)

	_, err = v1handler.DecodeCreateScanRequest(jx.DecodeStr(`{"subjectIds":["nope"]}`))
	require.Error(t, err)
}

func TestCreateScan(t *testing.T) {
	c := newAPIClient(t)
	c.coordinator.EXPECT().
		StartScan(gomock.Any(), domain.ScanKindBreach, []domain.SubjectID{domain.SubjectID(testSubjectID)}).
		Return(testScan(domain.ScanStatusPending), nil)

	rec := c.do(http.MethodPost, "/scans",
		`{"kind":"breach","subjectIds":["9d0c1b2a-3e4f-4a5b-8c7d-6e5f4a3b2c1d"]}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestCreateScan_DefaultsToFull(t *testing.T) {
	c := newAPIClient(t)
	c.coordinator.EXPECT().StartScan(gomock.Any(), domain.ScanKindFull, nil).
		Return(testScan(domain.ScanStatusPending), nil)

	rec := c.do(http.MethodPost, "/scans", `{}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestCreateScan_BadRequests(t *testing.T) {
	c := newAPIClient(t)

	rec := c.do(http.MethodPost, "/scans", `not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	c.coordinator.EXPECT().StartScan(gomock.Any(), domain.ScanKind("weekly"), nil).
		Return(nil, serrors.With(serrors.ErrBadRequest, "unknown scan kind %q", "weekly"))
	rec = c.do(http.MethodPost, "/scans", `{"kind":"weekly"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"unknown scan kind \"weekly\""}`, rec.Body.String())
}

func TestGetScan(t *testing.T) {
	c := newAPIClient(t)
	c.coordinator.EXPECT().Scan(gomock.Any(), domain.ScanID(testScanID)).
		Return(testScan(domain.ScanStatusRunning), nil)

	rec := c.do(http.MethodGet, "/scans/"+testScanID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"running"`)
}

func TestGetScan_Errors(t *testing.T) {
	c := newAPIClient(t)

	rec := c.do(http.MethodGet, "/scans/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	c.coordinator.EXPECT().Scan(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrNotFound, "scan not found"))
	rec = c.do(http.MethodGet, "/scans/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	c.coordinator.EXPECT().Scan(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	rec = c.do(http.MethodGet, "/scans/"+uuid.NewString(), "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "db down")
}

func TestListScans(t *testing.T) {
	c := newAPIClient(t)
	c.coordinator.EXPECT().Scans(gomock.Any(), "abc", uint(5)).
		Return([]domain.Scan{*testScan(domain.ScanStatusCompleted)}, "next", nil)

	rec := c.do(http.MethodGet, "/scans?cursor=abc&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items int
	var cursor string
	require.NoError(t, jx.DecodeBytes(rec.Body.Bytes()).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "items":
			return d.Arr(func(d *jx.Decoder) error {
				items++

				return d.Skip()
			})
		case "nextCursor":
			var err error
			cursor, err = d.Str()

			return err
		default:
			return d.Skip()
		}
	}))
	require.Equal(t, 1, items)
	require.Equal(t, "next", cursor)
}

func TestListScans_LastPage(t *testing.T) {
	c := newAPIClient(t)
	c.coordinator.EXPECT().Scans(gomock.Any(), "", uint(v1handler.DefaultLimit)).Return(nil, "", nil)

	rec := c.do(http.MethodGet, "/scans", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[],"nextCursor":null}`, rec.Body.String())
}

func TestListScans_InvalidLimit(t *testing.T) {
	c := newAPIClient(t)

	rec := c.do(http.MethodGet, "/scans?limit=1000", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
