package adapters

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"artifactory-cleanup/internal/ports"
	"artifactory-cleanup/internal/types"
)

// JFrogSearchAdapter fetches the inventory for one repository via
// `jf rt search`. Search results carry the repo-qualified path in a
// single field, so the leading segment is split back off.
type JFrogSearchAdapter struct {
	Repository string
}

func NewJFrogSearchAdapter(repository string) JFrogSearchAdapter {
	return JFrogSearchAdapter{Repository: repository}
}

func (a JFrogSearchAdapter) ListEntries(ctx context.Context) ([]types.ArtifactEntry, error) {
	repository := strings.TrimSpace(a.Repository)
	if repository == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository name is empty")
	}
	output, err := runJFrog(ctx, "rt", "search", repository+"/*")
	if err != nil {
		return nil, err
	}
	var raw []struct {
		Path     string `json:"path"`
		Type     string `json:"type"`
		Size     int64  `json:"size"`
		Created  string `json:"created"`
		Modified string `json:"modified"`
		Updated  string `json:"updated"`
	}
	if err := json.Unmarshal(output, &raw); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse jfrog search output").
			WithCause(err)
	}
	entries := make([]types.ArtifactEntry, 0, len(raw))
	for _, item := range raw {
		repo, dir, name := splitSearchPath(item.Path)
		if dir == "" && name == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("inventory entry missing path field")
		}
		entries = append(entries, types.ArtifactEntry{
			Repo:     repo,
			Path:     dir,
			Name:     name,
			Type:     types.EntryType(item.Type),
			Size:     item.Size,
			Created:  parseArtifactoryTime(item.Created),
			Modified: parseArtifactoryTime(item.Modified),
			Updated:  parseArtifactoryTime(item.Updated),
		})
	}
	return entries, nil
}

// splitSearchPath breaks "repo/dir/.../name" into its repo, directory
// and file name parts.
func splitSearchPath(full string) (repo string, dir string, name string) {
	parts := strings.Split(strings.Trim(full, "/"), "/")
	switch len(parts) {
	case 0:
		return "", "", ""
	case 1:
		return parts[0], "", ""
	case 2:
		return parts[0], "", parts[1]
	default:
		return parts[0], strings.Join(parts[1:len(parts)-1], "/"), parts[len(parts)-1]
	}
}

var _ ports.InventoryPort = JFrogSearchAdapter{}
