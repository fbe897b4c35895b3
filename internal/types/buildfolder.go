package types

import "time"

// BuildFolderGroup collects all file entries that live under one build
// folder, in inventory order.
type BuildFolderGroup struct {
	Folder  string
	Entries []ArtifactEntry
}

// BuildFolderSummary describes one build folder considered for
// deletion, with enough detail for the operator-facing report.
type BuildFolderSummary struct {
	Folder     string
	FileCount  int
	Oldest     time.Time
	Newest     time.Time
	OldestFile string
	NewestFile string
	OldestDays int
	NewestDays int
	SizeBytes  int64
	Reason     string
}
