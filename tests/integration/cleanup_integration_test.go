package integration

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artifactory-cleanup/internal/adapters"
	"artifactory-cleanup/internal/app"
	"artifactory-cleanup/internal/types"
)

type captureExecutor struct {
	specs []types.FileSpec
	paths []string
}

func (e *captureExecutor) Delete(_ context.Context, specPath string) error {
	data, err := os.ReadFile(specPath)
	if err != nil {
		return err
	}
	var spec types.FileSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return err
	}
	e.specs = append(e.specs, spec)
	e.paths = append(e.paths, specPath)
	return nil
}

// TestFullCleanupRun drives a complete run through the real config,
// inventory and spec writer adapters, capturing what the external
// delete command would have received.
func TestFullCleanupRun(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "cleanup-config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
protected_paths:
  - build_tools/
time_threshold_days: 300
cleanup_target_paths:
  - builds_ns/builds_zion/gcov/
chunk_size: 1
`), 0644))

	inventoryPath := filepath.Join(dir, "repo_files.json")
	require.NoError(t, os.WriteFile(inventoryPath, []byte(`{"results": [
		{"repo": "generic-local", "path": "build_tools/gcc", "name": "old.tar.gz", "type": "file", "size": 100, "created": "2020-01-01T00:00:00.000Z"},
		{"repo": "generic-local", "path": "builds_ns/builds_zion/gcov/run1", "name": "cov-a.xml", "type": "file", "size": 200, "created": "2024-06-01T00:00:00.000Z"},
		{"repo": "generic-local", "path": "builds_ns/builds_zion/gcov/run2", "name": "cov-b.xml", "type": "file", "size": 300, "created": "2024-07-01T00:00:00.000Z"},
		{"repo": "generic-local", "path": "builds_ns/builds_zion/gcov/run3", "name": "cov-new.xml", "type": "file", "size": 400, "created": "2026-07-20T00:00:00.000Z"}
	]}`), 0644))

	executor := &captureExecutor{}
	service := app.Service{
		ConfigLoader: adapters.NewConfigFileAdapter(),
		Executor:     executor,
		Clock: func() time.Time {
			return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		},
	}

	result, err := service.Cleanup(t.Context(), app.CleanupRequest{
		ConfigPath:    configPath,
		InventoryPath: inventoryPath,
		OutputDir:     dir,
		DateField:     "created",
		DryRun:        false,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Eligible)
	assert.Equal(t, int64(500), result.TotalSizeBytes)
	require.Len(t, result.SpecPaths, 2, "chunk_size=1 yields one spec per entry")
	require.Len(t, executor.specs, 2)
	assert.Equal(t, result.SpecPaths, executor.paths)
	assert.Equal(t,
		"generic-local/builds_ns/builds_zion/gcov/run1/cov-a.xml",
		executor.specs[0].Files[0].Pattern)
	assert.Equal(t,
		"generic-local/builds_ns/builds_zion/gcov/run2/cov-b.xml",
		executor.specs[1].Files[0].Pattern)
}

func TestFullCleanupRunDryRunLeavesSpecsOnly(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "cleanup-config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
time_threshold_days: 300
cleanup_target_paths:
  - builds/
`), 0644))

	inventoryPath := filepath.Join(dir, "repo_files.json")
	require.NoError(t, os.WriteFile(inventoryPath, []byte(`[
		{"repo": "generic-local", "path": "builds/old", "name": "a", "type": "file", "size": 1, "created": "2020-01-01T00:00:00.000Z"}
	]`), 0644))

	executor := &captureExecutor{}
	service := app.Service{
		ConfigLoader: adapters.NewConfigFileAdapter(),
		Executor:     executor,
		Clock: func() time.Time {
			return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		},
	}

	result, err := service.Cleanup(t.Context(), app.CleanupRequest{
		ConfigPath:    configPath,
		InventoryPath: inventoryPath,
		OutputDir:     dir,
		DateField:     "created",
		DryRun:        true,
	})
	require.NoError(t, err)
	require.Len(t, result.SpecPaths, 1)
	_, err = os.Stat(result.SpecPaths[0])
	assert.NoError(t, err)
	assert.Empty(t, executor.specs, "dry-run must never reach the executor")
}
