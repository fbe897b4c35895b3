package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artifactory-cleanup/internal/adapters"
)

func setupBuildRun(t *testing.T) (PruneBuildsRequest, *recordingExecutor, Service) {
	t.Helper()
	dir := t.TempDir()
	configPath := writeFixture(t, dir, "cleanup-config.yaml", `
protected_paths:
  - keep/
time_threshold_days: 300
`)
	inventoryPath := writeFixture(t, dir, "repo_files.json", `{"results": [
		{"repo": "ci-local", "path": "ci/build_app_12_1234/logs", "name": "a.log", "type": "file", "size": 1024, "created": "2024-01-01T00:00:00.000Z"},
		{"repo": "ci-local", "path": "ci/build_app_12_1234/bin", "name": "a.bin", "type": "file", "size": 1024, "created": "2024-02-01T00:00:00.000Z"},
		{"repo": "ci-local", "path": "ci/build_web_56_1234/bin", "name": "b.bin", "type": "file", "size": 1024, "created": "2026-07-20T00:00:00.000Z"},
		{"repo": "ci-local", "path": "keep/build_old_99_1234/bin", "name": "c.bin", "type": "file", "size": 1024, "created": "2020-01-01T00:00:00.000Z"}
	]}`)

	executor := &recordingExecutor{}
	service := Service{
		ConfigLoader: adapters.NewConfigFileAdapter(),
		Executor:     executor,
		Clock:        fixedClock,
	}
	req := PruneBuildsRequest{
		ConfigPath:    configPath,
		InventoryPath: inventoryPath,
		OutputDir:     dir,
		DateField:     "created",
	}
	return req, executor, service
}

func TestPruneBuildsDryRun(t *testing.T) {
	req, executor, service := setupBuildRun(t)
	req.DryRun = true

	result, err := service.PruneBuilds(t.Context(), req)
	require.NoError(t, err)
	require.Len(t, result.ToDelete, 1)
	assert.Equal(t, "ci-local/ci/build_app_12_1234", result.ToDelete[0].Folder)
	require.Len(t, result.NotSelected, 1)
	assert.NotEmpty(t, result.SpecPath)
	_, err = os.Stat(result.SpecPath)
	assert.NoError(t, err)
	assert.Empty(t, executor.calls)
	assert.False(t, result.Executed)
}

func TestPruneBuildsExecutesSingleSpec(t *testing.T) {
	req, executor, service := setupBuildRun(t)

	result, err := service.PruneBuilds(t.Context(), req)
	require.NoError(t, err)
	require.Len(t, executor.calls, 1)
	assert.Equal(t, result.SpecPath, executor.calls[0])
	assert.True(t, result.Executed)
}

func TestPruneBuildsProtectedFolderNeverConsidered(t *testing.T) {
	req, _, service := setupBuildRun(t)
	req.DryRun = true

	result, err := service.PruneBuilds(t.Context(), req)
	require.NoError(t, err)
	for _, folder := range append(result.ToDelete, result.NotSelected...) {
		assert.NotContains(t, folder.Folder, "keep/")
	}
}
