package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"artifactory-cleanup/internal/ports"
	"artifactory-cleanup/internal/types"
)

// SpecDirAdapter writes delete spec documents into a run-scoped
// directory named after the run's start time, so repeated runs never
// collide.
type SpecDirAdapter struct {
	Dir   string
	Stamp string
}

func NewSpecDirAdapter(baseDir string, start time.Time) SpecDirAdapter {
	stamp := start.Format("20060102_150405")
	return SpecDirAdapter{
		Dir:   filepath.Join(baseDir, "fileSpec_"+stamp),
		Stamp: stamp,
	}
}

func (a SpecDirAdapter) WriteSpec(name string, spec types.FileSpec) (string, error) {
	if strings.TrimSpace(a.Dir) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create spec output directory").
			WithCause(err)
	}
	filename := fmt.Sprintf("filespec_%s_%s.json", sanitizeSpecName(name), a.Stamp)
	path := filepath.Join(a.Dir, filename)
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode file spec").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write file spec").
			WithCause(err)
	}
	return path, nil
}

func sanitizeSpecName(name string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(name), "/", "_")
	if cleaned == "" {
		return "batch"
	}
	return cleaned
}

var _ ports.SpecWriterPort = SpecDirAdapter{}
