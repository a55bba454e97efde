package logger_test

import (
	"context"
	"privacymon/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       []string
		wantErr     bool
		wantDebug   bool
	}{
		{name: "development", environment: logger.DevelopmentEnvironment, wantDebug: true},
		{name: "production", environment: logger.ProductionEnvironment},
		{name: "level override", environment: logger.DevelopmentEnvironment, level: []string{"warn"}},
		{name: "empty level", environment: logger.DevelopmentEnvironment, level: []string{""}, wantDebug: true},
		{name: "invalid level", environment: logger.ProductionEnvironment, level: []string{"loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level...)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger.Get(context.Background()))
			require.Equal(t, tt.wantDebug, logger.IsDebug(context.Background()))
		})
	}
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "should return default logger when context has no logger")

	custom := zap.NewNop()
	require.Same(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("scan_id", "s-1"))
	logger.Info(ctx, "runner started", zap.String("runner", "breach"))
	logger.Debug(ctx, "debug")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	require.Equal(t, 4, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "runner started", entry.Message)
	require.Equal(t, map[string]any{"scan_id": "s-1", "runner": "breach"}, entry.ContextMap())
}
