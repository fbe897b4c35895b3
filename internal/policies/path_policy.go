package policies

import "strings"

// PathPolicy answers prefix-based protection and targeting questions
// for repository paths. Matching is exact string-prefix, never glob or
// regex. Protection takes precedence: a path under both a protected
// prefix and a target prefix is not eligible.
type PathPolicy struct {
	protected []string
	targets   []string
}

func NewPathPolicy(protected []string, targets []string) PathPolicy {
	return PathPolicy{
		protected: cleanPrefixes(protected),
		targets:   cleanPrefixes(targets),
	}
}

// Protected reports whether the path falls under a protected prefix.
func (p PathPolicy) Protected(path string) bool {
	for _, prefix := range p.protected {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Targeted reports whether the path falls under at least one cleanup
// target prefix. An empty target list targets everything.
func (p PathPolicy) Targeted(path string) bool {
	if len(p.targets) == 0 {
		return true
	}
	for _, prefix := range p.targets {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Eligible combines both checks with protection winning.
func (p PathPolicy) Eligible(path string) bool {
	if p.Protected(path) {
		return false
	}
	return p.Targeted(path)
}

func cleanPrefixes(values []string) []string {
	var cleaned []string
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned
}
