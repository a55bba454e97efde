package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"privacymon/internal/api"
	"privacymon/internal/api/handler/v1handler"
	mockscanning "privacymon/internal/scanning/mock"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/mock/gomock"
)

func publicKeyPEM(t *testing.T) string {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	h, err := api.NewRouter(context.Background(), api.Deps{
		Deps:          v1handler.Deps{Coordinator: mockscanning.NewMockCoordinator(gomock.NewController(t))},
		MeterProvider: noop.NewMeterProvider(),
	}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		RequestTimeout:    time.Second,
		MetricsPath:       "/metrics",
	})
	require.NoError(t, err)

	return h
}

func TestNewRouter_Routes(t *testing.T) {
	h := newRouter(t)

	tests := []struct {
		path   string
		status int
	}{
		{"/specs/v1.yaml", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/debug/pprof/", http.StatusOK},
		{"/v1/scans", http.StatusUnauthorized},
		{"/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestNewRouter_SpecAndRequestID(t *testing.T) {
	h := newRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/specs/v1.yaml", nil))
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "openapi: 3.0.3")
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestNewRouter_RequiresPublicKey(t *testing.T) {
	_, err := api.NewRouter(context.Background(), api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{},
		MetricsPath:       "/metrics",
	})
	require.Error(t, err)
}
