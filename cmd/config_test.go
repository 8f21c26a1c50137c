package cmd

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanup.dev/pkg/cleanup/internal/adapter"
	m "cleanup.dev/pkg/cleanup/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "cleanup", configBaseName)
	assert.Equal(t, "cleanup.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "CLEANUP", envPrefix)
	assert.Equal(t, "console.remove", consoleRemoveKey)
	assert.Equal(t, "checkpoint.retention", retentionKey)
	assert.Equal(t, 10, defaultRetention)
	assert.Equal(t, "none", defaultConsoleRemove)
	assert.True(t, defaultPreserveLicense)
	assert.True(t, defaultCheckpoint)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestRunConfigValidate(t *testing.T) {
	valid := runConfig{
		Root:       t.TempDir(),
		Extensions: adapter.DefaultExtensions,
		Retention:  10,
		Parallel:   1,
	}

	require.NoError(t, valid.validate())

	tests := []struct {
		name   string
		mutate func(*runConfig)
	}{
		{"empty root", func(c *runConfig) { c.Root = "" }},
		{"missing root", func(c *runConfig) { c.Root = c.Root + "/nope" }},
		{"no extensions", func(c *runConfig) { c.Extensions = nil }},
		{"blank extension", func(c *runConfig) { c.Extensions = []string{"js", ""} }},
		{"zero retention", func(c *runConfig) { c.Retention = 0 }},
		{"zero parallel", func(c *runConfig) { c.Parallel = 0 }},
		{"too many workers", func(c *runConfig) { c.Parallel = 1000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestConsoleSelectionFromConfig(t *testing.T) {
	// Rebind the console flag to a fresh, unchanged one so defaults show through.
	newTestCmd(newCleanCmd())
	t.Cleanup(func() { viper.SetDefault(consoleRemoveKey, defaultConsoleRemove) })

	tests := []struct {
		name  string
		value interface{}
		want  m.ConsoleSelection
	}{
		{"none", "none", m.ConsoleSelection{Mode: m.ConsoleNone}},
		{"all", "all", m.ConsoleSelection{Mode: m.ConsoleAll}},
		{"csv", "log,warn", m.ConsoleSelection{Mode: m.ConsoleSet, Methods: []string{"log", "warn"}}},
		{"yaml list", []interface{}{"log", "error"}, m.ConsoleSelection{Mode: m.ConsoleSet, Methods: []string{"log", "error"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.SetDefault(consoleRemoveKey, tt.value)
			assert.Equal(t, tt.want, consoleSelectionFromConfig())
		})
	}
}
