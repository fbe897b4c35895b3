package ports

import (
	"context"

	"artifactory-cleanup/internal/types"
)

type InventoryPort interface {
	ListEntries(ctx context.Context) ([]types.ArtifactEntry, error)
}
