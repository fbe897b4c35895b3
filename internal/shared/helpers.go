// Package shared provides small utility functions used across
// multiple packages in the artifactory-cleanup codebase.
package shared

import (
	"fmt"
	"math"
	"strings"
)

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}

// SizeMB converts a byte count to megabytes rounded to two decimals,
// matching the operator-facing report format.
func SizeMB(bytes int64) float64 {
	return math.Round(float64(bytes)/(1024*1024)*100) / 100
}
