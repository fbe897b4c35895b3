package policies

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathPolicyProtectionWinsOverTarget(t *testing.T) {
	policy := NewPathPolicy(
		[]string{"build_tools/"},
		[]string{"build_tools/", "builds_ns/"},
	)
	assert.True(t, policy.Protected("build_tools/gcc/a.deb"))
	assert.True(t, policy.Targeted("build_tools/gcc/a.deb"))
	assert.False(t, policy.Eligible("build_tools/gcc/a.deb"))
}

func TestPathPolicyEmptyTargetsMatchEverything(t *testing.T) {
	policy := NewPathPolicy(nil, nil)
	assert.True(t, policy.Targeted("anything/at/all"))
	assert.True(t, policy.Eligible("anything/at/all"))
}

func TestPathPolicyPrefixIsNotGlob(t *testing.T) {
	policy := NewPathPolicy(nil, []string{"builds_ns/builds_zion/gcov/"})
	assert.True(t, policy.Targeted("builds_ns/builds_zion/gcov/x"))
	assert.False(t, policy.Targeted("builds_ns/builds_zion/other/x"))
	assert.False(t, policy.Targeted("other/builds_ns/builds_zion/gcov/x"))
}

func TestPathPolicyIgnoresBlankPrefixes(t *testing.T) {
	policy := NewPathPolicy([]string{"", "  "}, []string{"", "keep/"})
	assert.False(t, policy.Protected("keep/a"))
	assert.True(t, policy.Targeted("keep/a"))
	assert.False(t, policy.Targeted("drop/a"))
}
