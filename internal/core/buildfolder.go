package core

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"artifactory-cleanup/internal/policies"
	"artifactory-cleanup/internal/types"
)

// Build folder naming conventions produced by the CI pipeline. A
// folder is only prunable as a unit when its name matches one of
// these suffixes.
var (
	buildFolderPattern = regexp.MustCompile(`(.*?/)?(build_[^/]+_\d+_\d+)(/.*)?$`)
	buildSuffixAlpha   = regexp.MustCompile(`_a$`)
	buildSuffixNumeric = regexp.MustCompile(`_[1-9]{4}$`)
	buildSuffixHash    = regexp.MustCompile(`_[a-z1-9]{11}$`)
)

// BuildFolderKey truncates a path after its build folder segment. A
// path without a build folder segment is returned unchanged.
func BuildFolderKey(entryPath string) string {
	match := buildFolderPattern.FindStringSubmatch(entryPath)
	if match == nil {
		return entryPath
	}
	segment := match[2]
	return entryPath[:strings.Index(entryPath, segment)+len(segment)]
}

// MatchBuildFolder reports whether the folder name follows one of the
// known build folder suffix conventions.
func MatchBuildFolder(folder string) bool {
	return buildSuffixAlpha.MatchString(folder) ||
		buildSuffixNumeric.MatchString(folder) ||
		buildSuffixHash.MatchString(folder)
}

// GroupBuildFolders groups file entries by their build folder key,
// preserving the order in which folders first appear in the inventory.
func GroupBuildFolders(entries []types.ArtifactEntry) []types.BuildFolderGroup {
	index := map[string]int{}
	var groups []types.BuildFolderGroup
	for _, entry := range entries {
		if entry.Type != types.EntryTypeFile {
			continue
		}
		key := BuildFolderKey(entry.Path)
		at, ok := index[key]
		if !ok {
			at = len(groups)
			index[key] = at
			groups = append(groups, types.BuildFolderGroup{Folder: key})
		}
		groups[at].Entries = append(groups[at].Entries, entry)
	}
	return groups
}

// SelectBuildFolders partitions build folder groups into folders whose
// files are all older than the threshold and folders that stay. Folders
// under a protected prefix or with a non-matching name are ignored.
// A file without a usable timestamp keeps its folder (conservative:
// unknown age is treated as new).
func SelectBuildFolders(groups []types.BuildFolderGroup, policy types.RetentionPolicy, now time.Time) (toDelete []types.BuildFolderSummary, notSelected []types.BuildFolderSummary) {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	pathPolicy := policies.NewPathPolicy(policy.ProtectedPaths, nil)
	cutoff := now.AddDate(0, 0, -policy.ThresholdDays)

	for _, group := range groups {
		if pathPolicy.Protected(group.Folder + "/") {
			continue
		}
		if !MatchBuildFolder(group.Folder) {
			continue
		}
		summary := summarizeGroup(group, policy.DateField, now, cutoff)
		if summary.FileCount == 0 {
			continue
		}
		allOlder := summary.Reason == ""
		if allOlder {
			summary.Reason = fmt.Sprintf("all files older than %d days", policy.ThresholdDays)
			toDelete = append(toDelete, summary)
		} else {
			notSelected = append(notSelected, summary)
		}
	}
	return toDelete, notSelected
}

func summarizeGroup(group types.BuildFolderGroup, field types.DateField, now time.Time, cutoff time.Time) types.BuildFolderSummary {
	summary := types.BuildFolderSummary{Folder: group.Folder}
	for i, entry := range group.Entries {
		if i == 0 {
			summary.Folder = path.Join(entry.Repo, group.Folder)
		}
		date, ok := entry.DateValue(field)
		if !ok {
			// Fall back to created before giving up on the file.
			date, ok = entry.DateValue(types.DateFieldCreated)
		}
		if !ok {
			summary.Reason = "file with unknown age"
			summary.FileCount++
			summary.SizeBytes += entry.Size
			continue
		}
		if summary.Oldest.IsZero() || date.Before(summary.Oldest) {
			summary.Oldest = date
			summary.OldestFile = entry.Name
		}
		if summary.Newest.IsZero() || date.After(summary.Newest) {
			summary.Newest = date
			summary.NewestFile = entry.Name
		}
		summary.FileCount++
		summary.SizeBytes += entry.Size
		if date.After(cutoff) {
			summary.Reason = "some files are newer than the threshold"
		}
	}
	if !summary.Oldest.IsZero() {
		summary.OldestDays = int(now.Sub(summary.Oldest).Hours() / 24)
		summary.NewestDays = int(now.Sub(summary.Newest).Hours() / 24)
	}
	return summary
}
