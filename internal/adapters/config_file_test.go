package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artifactory-cleanup/internal/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cleanup-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConfigFileLoad(t *testing.T) {
	path := writeConfig(t, `
protected_paths:
  - build_tools/
time_threshold_days: 300
cleanup_target_paths:
  - builds_ns/builds_zion/gcov/
chunk_size: 50
log_level: debug
`)
	adapter := NewConfigFileAdapter()

	config, err := adapter.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"build_tools/"}, config.ProtectedPaths)
	assert.Equal(t, 300, config.TimeThresholdDays)
	assert.Equal(t, []string{"builds_ns/builds_zion/gcov/"}, config.CleanupTargetPaths)
	assert.Equal(t, 50, config.ChunkSize)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestConfigFileDefaults(t *testing.T) {
	path := writeConfig(t, `protected_paths: []`)
	adapter := NewConfigFileAdapter()

	config, err := adapter.Load(path)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultTimeThresholdDays, config.TimeThresholdDays)
	assert.Equal(t, "info", config.LogLevel)
	assert.Zero(t, config.ChunkSize)
}

func TestConfigFileNotFound(t *testing.T) {
	adapter := NewConfigFileAdapter()
	_, err := adapter.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfigFileMalformedYAML(t *testing.T) {
	path := writeConfig(t, "protected_paths: [unterminated")
	adapter := NewConfigFileAdapter()
	_, err := adapter.Load(path)
	require.Error(t, err)
}
