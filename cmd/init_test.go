package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := chdirTemp(t)

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(logArgs(t, "init"))

	err := cmd.Execute()
	require.NoError(t, err)

	targetPath := filepath.Join(tempDir, configFileName)
	info, err := os.Stat(targetPath)
	require.NoError(t, err)
	require.False(t, info.IsDir())

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "group_by")
	assert.Contains(t, string(contents), "entry_package")
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o600))

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(logArgs(t, "init"))

	err := cmd.Execute()
	require.Error(t, err)
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o600))

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(logArgs(t, "init", "--force"))

	require.NoError(t, cmd.Execute())

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.NotContains(t, string(contents), "existing")
	assert.Contains(t, string(contents), "report")
}
