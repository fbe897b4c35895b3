package types

// RetentionPolicy describes which inventory entries are eligible for
// deletion. Protection always wins: an entry under both a protected
// prefix and a cleanup target prefix is never eligible.
type RetentionPolicy struct {
	ProtectedPaths     []string
	CleanupTargetPaths []string
	ThresholdDays      int
	DateField          DateField
	ChunkSize          int
}

// CleanupPlan is the outcome of the retention filter. Eligible keeps
// the inventory order and contains no duplicate paths.
type CleanupPlan struct {
	Eligible           []ArtifactEntry
	SkippedMissingDate int
}

// DeletionBatch groups eligible entries for a single invocation of the
// external delete command.
type DeletionBatch struct {
	Entries []ArtifactEntry
}

// FileSpec builds the delete spec document for this batch.
func (b DeletionBatch) FileSpec() FileSpec {
	spec := FileSpec{Files: make([]FileSpecEntry, 0, len(b.Entries))}
	for _, entry := range b.Entries {
		spec.Files = append(spec.Files, FileSpecEntry{Pattern: entry.Pattern()})
	}
	return spec
}
