package adapters

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"artifactory-cleanup/internal/ports"
)

// JFrogDeleteAdapter executes one delete batch via
// `jf rt del --spec <file>`. Callers skip it entirely in dry-run mode;
// the adapter itself never adds --dry-run.
type JFrogDeleteAdapter struct{}

func NewJFrogDeleteAdapter() JFrogDeleteAdapter {
	return JFrogDeleteAdapter{}
}

func (a JFrogDeleteAdapter) Delete(ctx context.Context, specPath string) error {
	if strings.TrimSpace(specPath) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec path is empty")
	}
	_, err := runJFrog(ctx, "rt", "del", "--spec", specPath, "--quiet")
	return err
}

var _ ports.DeleteExecutorPort = JFrogDeleteAdapter{}
