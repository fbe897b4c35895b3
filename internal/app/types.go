package app

import "artifactory-cleanup/internal/types"

type CleanupRequest struct {
	ConfigPath    string
	InventoryPath string
	Repository    string
	OutputDir     string
	DateField     string
	DryRun        bool
}

type CleanupResult struct {
	Eligible           int
	SkippedMissingDate int
	TotalSizeBytes     int64
	SpecPaths          []string
	ExecutedBatches    int
	DryRun             bool
}

type PruneBuildsRequest struct {
	ConfigPath    string
	InventoryPath string
	Repository    string
	OutputDir     string
	DateField     string
	DryRun        bool
}

type PruneBuildsResult struct {
	ToDelete    []types.BuildFolderSummary
	NotSelected []types.BuildFolderSummary
	SpecPath    string
	Executed    bool
	DryRun      bool
}
