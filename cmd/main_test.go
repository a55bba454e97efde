package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigArgs(t *testing.T) {
	require.Equal(t, []string{"-c", "prod.yml"}, configArgs([]string{"serve", "-c", "prod.yml"}))
	require.Equal(t, []string{"-c", "prod.yml"}, configArgs([]string{"--config=prod.yml", "jwt", "--subject", "ops"}))
	require.Equal(t, []string{"-c", "a.yml"}, configArgs([]string{"scan", "-c=a.yml", "--kind", "breach"}))
	require.Nil(t, configArgs([]string{"serve"}))
	require.Nil(t, configArgs([]string{"serve", "-c"}))
}
