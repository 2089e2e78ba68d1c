package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "htmlreport", configBaseName)
	assert.Equal(t, "htmlreport.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "report.output", outputConfigKey)
	assert.Equal(t, "report.group_by", groupByConfigKey)
	assert.Equal(t, "report.html", defaultOutput)
	assert.Equal(t, "package", defaultGroupBy)
	assert.Equal(t, "HTMLREPORT", envPrefix)
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
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo), tt.value)
	}
}

func TestConfigureLogger_WritesToFile(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	path := filepath.Join(t.TempDir(), "test.log")
	configureLogger(path, true)

	slog.Debug("debug line", "key", "value")

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "debug line")
	assert.Contains(t, string(contents), "key=value")
}

func TestReadConfigFile_WarnsOnBrokenFile(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(original)
		viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	})

	var logs bytes.Buffer

	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))

	dir := t.TempDir()

	viper.SetConfigFile(filepath.Join(dir, "missing.yaml"))
	readConfigFile()
	assert.Empty(t, logs.String(), "a missing config file is not worth a warning")

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("report: [unclosed\n"), 0o600))

	viper.SetConfigFile(broken)
	readConfigFile()
	assert.Contains(t, logs.String(), "ignoring unreadable config file")
	assert.Contains(t, logs.String(), "broken.yaml")
}
