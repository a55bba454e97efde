package scanning_test

import (
	"privacymon/internal/scanning"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRetryPolicy(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	p := scanning.DefaultRetryPolicy()
	require.Equal(t, 4, p.MaxAttempts)
	for attempt := 1; attempt <= 3; attempt++ {
		require.Equal(t, now.Add(2*time.Minute), p.NextRetry(attempt, now))
		require.False(t, p.Exhausted(attempt, 0))
	}
	require.True(t, p.Exhausted(4, 0))
	require.True(t, p.Exhausted(2, 2))

	custom := scanning.NewRetryPolicy(2, 30*time.Second)
	require.Equal(t, 2, custom.MaxAttempts)
	require.Equal(t, now.Add(30*time.Second), custom.NextRetry(1, now))

	fallback := scanning.NewRetryPolicy(0, 0)
	require.Equal(t, scanning.DefaultMaxAttempts, fallback.MaxAttempts)
	require.Equal(t, now.Add(scanning.DefaultRetryBackoff), fallback.NextRetry(1, now))

	require.Equal(t, now.Add(scanning.DefaultRetryBackoff), scanning.RetryPolicy{}.NextRetry(1, now))
}
