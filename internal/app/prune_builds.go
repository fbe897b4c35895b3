package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"artifactory-cleanup/internal/adapters"
	"artifactory-cleanup/internal/core"
	"artifactory-cleanup/internal/types"
)

// PruneBuilds deletes whole CI build folders whose files are all older
// than the threshold. One spec covering every selected folder is
// written and executed in a single delete invocation.
func (s Service) PruneBuilds(ctx context.Context, req PruneBuildsRequest) (PruneBuildsResult, error) {
	config, err := s.ConfigLoader.Load(req.ConfigPath)
	if err != nil {
		return PruneBuildsResult{}, err
	}
	field, err := types.ParseDateField(req.DateField)
	if err != nil {
		return PruneBuildsResult{}, err
	}
	inventory, err := buildInventoryAdapter(req.InventoryPath, req.Repository)
	if err != nil {
		return PruneBuildsResult{}, err
	}
	entries, err := inventory.ListEntries(ctx)
	if err != nil {
		return PruneBuildsResult{}, err
	}

	policy := types.RetentionPolicy{
		ProtectedPaths: config.ProtectedPaths,
		ThresholdDays:  config.TimeThresholdDays,
		DateField:      field,
	}
	now := timeNow(s.Clock)
	groups := core.GroupBuildFolders(entries)
	log.Info().
		Int("build_folders", len(groups)).
		Int("threshold_days", policy.ThresholdDays).
		Bool("dry_run", req.DryRun).
		Msg("starting build folder prune")

	toDelete, notSelected := core.SelectBuildFolders(groups, policy, now)
	result := PruneBuildsResult{
		ToDelete:    toDelete,
		NotSelected: notSelected,
		DryRun:      req.DryRun,
	}
	if len(toDelete) == 0 {
		return result, nil
	}

	spec := types.FileSpec{Files: make([]types.FileSpecEntry, 0, len(toDelete))}
	for _, folder := range toDelete {
		spec.Files = append(spec.Files, types.FileSpecEntry{Pattern: folder.Folder + "/**"})
	}
	writer := adapters.NewSpecDirAdapter(req.OutputDir, now)
	path, err := writer.WriteSpec("build_folders", spec)
	if err != nil {
		return result, err
	}
	result.SpecPath = path
	if req.DryRun {
		return result, nil
	}
	if err := s.Executor.Delete(ctx, path); err != nil {
		return result, err
	}
	result.Executed = true
	return result, nil
}
