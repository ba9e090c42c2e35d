package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)
	require.Equal(t, &Config{LogLevel: slog.LevelWarn, Shell: "auto"}, cfg)
}

func TestLoadFrom_Values(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"RANGECONST_LOG_LEVEL":  "debug",
		"RANGECONST_SHELL":      "powershell",
		"RANGECONST_ENV_PREFIX": "APP_",
		"RANGECONST_NO_COLOR":   "true",
		"LOG_LEVEL":             "error",
	})
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	require.Equal(t, "powershell", cfg.Shell)
	require.Equal(t, "APP_", cfg.EnvPrefix)
	require.True(t, cfg.NoColor)
}

func TestLoadFrom_Invalid(t *testing.T) {
	_, err := LoadFrom(map[string]string{"RANGECONST_LOG_LEVEL": "loud"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse env")

	_, err = LoadFrom(map[string]string{"RANGECONST_NO_COLOR": "maybe"})
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Setenv("RANGECONST_SHELL", "cmd")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "cmd", cfg.Shell)
}
