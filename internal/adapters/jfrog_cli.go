package adapters

import (
	"context"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"artifactory-cleanup/internal/shared"
)

// runJFrog invokes the JFrog CLI and returns its combined output. The
// `jf` binary must be on PATH and configured for the target instance.
func runJFrog(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "jf", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("jfrog cli command failed").
			WithCause(shared.CommandError(output, err))
	}
	return output, nil
}
