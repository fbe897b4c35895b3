package app

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"artifactory-cleanup/internal/adapters"
	"artifactory-cleanup/internal/core"
	"artifactory-cleanup/internal/ports"
	"artifactory-cleanup/internal/types"
)

// Cleanup runs one full retention pass: load policy, fetch inventory,
// filter, partition, write one spec per batch, then execute batches in
// order unless dry-run. Execution halts on the first failing batch;
// the error reports completed versus not-attempted batches.
func (s Service) Cleanup(ctx context.Context, req CleanupRequest) (CleanupResult, error) {
	assert.NotEmpty(ctx, req.ConfigPath, "config path must be set")
	config, err := s.ConfigLoader.Load(req.ConfigPath)
	if err != nil {
		return CleanupResult{}, err
	}
	field, err := types.ParseDateField(req.DateField)
	if err != nil {
		return CleanupResult{}, err
	}
	inventory, err := buildInventoryAdapter(req.InventoryPath, req.Repository)
	if err != nil {
		return CleanupResult{}, err
	}
	entries, err := inventory.ListEntries(ctx)
	if err != nil {
		return CleanupResult{}, err
	}

	policy := types.RetentionPolicy{
		ProtectedPaths:     config.ProtectedPaths,
		CleanupTargetPaths: config.CleanupTargetPaths,
		ThresholdDays:      config.TimeThresholdDays,
		DateField:          field,
		ChunkSize:          config.ChunkSize,
	}
	now := timeNow(s.Clock)
	log.Info().
		Int("threshold_days", policy.ThresholdDays).
		Strs("protected_paths", policy.ProtectedPaths).
		Strs("cleanup_target_paths", policy.CleanupTargetPaths).
		Str("date_field", string(field)).
		Bool("dry_run", req.DryRun).
		Msg("starting cleanup run")

	plan, err := core.Select(ctx, entries, policy, now)
	if err != nil {
		return CleanupResult{}, err
	}
	result := CleanupResult{
		Eligible:           len(plan.Eligible),
		SkippedMissingDate: plan.SkippedMissingDate,
		DryRun:             req.DryRun,
	}
	for _, entry := range plan.Eligible {
		result.TotalSizeBytes += entry.Size
	}

	batches := core.Partition(plan.Eligible, policy.ChunkSize)
	if len(batches) == 0 {
		return result, nil
	}
	writer := adapters.NewSpecDirAdapter(req.OutputDir, now)
	for i, batch := range batches {
		name := fmt.Sprintf("batch_%03d", i+1)
		path, err := writer.WriteSpec(name, batch.FileSpec())
		if err != nil {
			return result, err
		}
		result.SpecPaths = append(result.SpecPaths, path)
	}
	if req.DryRun {
		return result, nil
	}
	for i, path := range result.SpecPaths {
		if err := s.Executor.Delete(ctx, path); err != nil {
			result.ExecutedBatches = i
			return result, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf(
					"deletion halted at batch %d of %d (%d completed, %d not attempted)",
					i+1, len(result.SpecPaths), i, len(result.SpecPaths)-i-1)).
				WithCause(err)
		}
		result.ExecutedBatches = i + 1
	}
	return result, nil
}

func buildInventoryAdapter(inventoryPath string, repository string) (ports.InventoryPort, error) {
	path := strings.TrimSpace(inventoryPath)
	repo := strings.TrimSpace(repository)
	switch {
	case path == "" && repo == "":
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("inventory path or repository name is required")
	case path != "" && repo != "":
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("inventory path and repository name are mutually exclusive")
	case repo != "":
		return adapters.NewJFrogSearchAdapter(repo), nil
	default:
		return adapters.NewInventoryFileAdapter(path), nil
	}
}
