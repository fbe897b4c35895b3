package ports

import "artifactory-cleanup/internal/types"

type ConfigPort interface {
	Load(path string) (types.CleanupConfig, error)
}
