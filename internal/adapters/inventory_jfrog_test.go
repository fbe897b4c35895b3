package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSearchPath(t *testing.T) {
	tests := []struct {
		full string
		repo string
		dir  string
		name string
	}{
		{"generic-local/builds/nightly/app.tar.gz", "generic-local", "builds/nightly", "app.tar.gz"},
		{"generic-local/app.tar.gz", "generic-local", "", "app.tar.gz"},
		{"generic-local", "generic-local", "", ""},
	}
	for _, tt := range tests {
		repo, dir, name := splitSearchPath(tt.full)
		assert.Equal(t, tt.repo, repo, "full: %s", tt.full)
		assert.Equal(t, tt.dir, dir, "full: %s", tt.full)
		assert.Equal(t, tt.name, name, "full: %s", tt.full)
	}
}

func TestJFrogSearchAdapterRequiresRepository(t *testing.T) {
	adapter := NewJFrogSearchAdapter("  ")
	_, err := adapter.ListEntries(t.Context())
	require.Error(t, err)
}
