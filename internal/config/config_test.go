package config_test

import (
	"os"
	"path/filepath"
	"privacymon/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("environment: production\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, 4, cfg.Scanner.MaxAttempts)
	require.Equal(t, 2*time.Minute, cfg.Scanner.RetryBackoff)
	require.Equal(t, 24*time.Hour, cfg.Scanner.FullScanInterval)
	require.Equal(t, 6*time.Hour, cfg.Scanner.BreachScanInterval)
	require.Equal(t, 30*time.Second, cfg.HIBP.Timeout)
	require.Equal(t, 100, cfg.Notifications.QueueSize)
	require.Equal(t, 587, cfg.Notifications.SMTP.Port)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
scanner:
  maxAttempts: 2
  schedulerEnabled: false
hibp:
  apiKey: secret
notifications:
  smtp:
    host: smtp.example.com
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Scanner.MaxAttempts)
	require.False(t, cfg.Scanner.SchedulerEnabled)
	require.Equal(t, "secret", cfg.HIBP.APIKey)
	require.Equal(t, "smtp.example.com", cfg.Notifications.SMTP.Host)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
