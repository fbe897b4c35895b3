package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"artifactory-cleanup/internal/ports"
	"artifactory-cleanup/internal/types"
)

// InventoryFileAdapter reads a pre-fetched inventory document, either
// the raw AQL response ({"results": [...]}) or a bare entry array.
type InventoryFileAdapter struct {
	Path string
}

func NewInventoryFileAdapter(path string) InventoryFileAdapter {
	return InventoryFileAdapter{Path: path}
}

func (a InventoryFileAdapter) ListEntries(ctx context.Context) ([]types.ArtifactEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("inventory file not found").
			WithCause(err)
	}
	return decodeInventory(data)
}

type rawArtifactEntry struct {
	Repo     string `json:"repo"`
	Path     string `json:"path"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Size     int64  `json:"size"`
	Created  string `json:"created"`
	Modified string `json:"modified"`
	Updated  string `json:"updated"`
}

func decodeInventory(data []byte) ([]types.ArtifactEntry, error) {
	var raw []rawArtifactEntry
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, inventoryParseError(err)
		}
	} else {
		var wrapper struct {
			Results []rawArtifactEntry `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, inventoryParseError(err)
		}
		raw = wrapper.Results
	}
	entries := make([]types.ArtifactEntry, 0, len(raw))
	for _, item := range raw {
		if item.Path == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("inventory entry missing path field")
		}
		entries = append(entries, types.ArtifactEntry{
			Repo:     item.Repo,
			Path:     item.Path,
			Name:     item.Name,
			Type:     types.EntryType(item.Type),
			Size:     item.Size,
			Created:  parseArtifactoryTime(item.Created),
			Modified: parseArtifactoryTime(item.Modified),
			Updated:  parseArtifactoryTime(item.Updated),
		})
	}
	return entries, nil
}

func inventoryParseError(err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("failed to parse inventory document").
		WithCause(err)
}

var _ ports.InventoryPort = InventoryFileAdapter{}
