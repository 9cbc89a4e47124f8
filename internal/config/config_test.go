package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PASSCHECK_OUTPUT", "")
	t.Setenv("PASSCHECK_SEED", "")

	cfg, warnings := Load()
	require.Empty(t, warnings)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, slog.LevelWarn, cfg.LogLevel)
	require.Equal(t, OutputText, cfg.Output)
	require.Nil(t, cfg.Seed)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PASSCHECK_OUTPUT", "JSON")
	t.Setenv("PASSCHECK_SEED", "1234")

	cfg, warnings := Load()
	require.Empty(t, warnings)
	require.Equal(t, "production", cfg.Env)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	require.Equal(t, OutputJSON, cfg.Output)
	require.NotNil(t, cfg.Seed)
	require.Equal(t, uint64(1234), *cfg.Seed)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("PASSCHECK_OUTPUT", "yaml")
	t.Setenv("PASSCHECK_SEED", "-5")

	cfg, warnings := Load()
	require.Equal(t, slog.LevelWarn, cfg.LogLevel)
	require.Equal(t, OutputText, cfg.Output)
	require.Nil(t, cfg.Seed)

	require.Len(t, warnings, 3)
	require.Contains(t, warnings[0], "LOG_LEVEL")
	require.Contains(t, warnings[1], "PASSCHECK_OUTPUT")
	require.Contains(t, warnings[2], "PASSCHECK_SEED")
}
