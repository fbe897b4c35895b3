package core

import "artifactory-cleanup/internal/types"

// Partition splits the eligible entries into consecutive batches of at
// most chunkSize each. A chunkSize of zero or less yields a single
// batch holding everything. Batch order matches selection order and
// concatenating all batches reproduces the input exactly.
func Partition(entries []types.ArtifactEntry, chunkSize int) []types.DeletionBatch {
	if len(entries) == 0 {
		return nil
	}
	if chunkSize <= 0 {
		return []types.DeletionBatch{{Entries: entries}}
	}
	batches := make([]types.DeletionBatch, 0, (len(entries)+chunkSize-1)/chunkSize)
	for start := 0; start < len(entries); start += chunkSize {
		end := start + chunkSize
		if end > len(entries) {
			end = len(entries)
		}
		batches = append(batches, types.DeletionBatch{Entries: entries[start:end]})
	}
	return batches
}
