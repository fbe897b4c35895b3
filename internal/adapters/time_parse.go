package adapters

import (
	"strings"
	"time"
)

// parseArtifactoryTime parses the timestamp formats Artifactory emits
// in AQL and search results. An unparseable or empty value yields the
// zero time, which downstream code treats as an absent field.
func parseArtifactoryTime(value string) time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}
	}
	layouts := []string{
		"2006-01-02T15:04:05.000Z",
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
