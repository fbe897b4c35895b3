package ports

import "artifactory-cleanup/internal/types"

type SpecWriterPort interface {
	WriteSpec(name string, spec types.FileSpec) (string, error)
}
