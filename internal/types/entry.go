package types

import (
	"path"
	"time"
)

// ArtifactEntry is one row of the repository inventory as returned by
// an Artifactory AQL items.find query. Entries are immutable once
// decoded; a zero timestamp means the field was absent upstream.
type ArtifactEntry struct {
	Repo     string
	Path     string
	Name     string
	Type     EntryType
	Size     int64
	Created  time.Time
	Modified time.Time
	Updated  time.Time
}

// FullPath joins the directory path and file name.
func (e ArtifactEntry) FullPath() string {
	return path.Join(e.Path, e.Name)
}

// Pattern returns the repo-qualified path used in delete file specs.
func (e ArtifactEntry) Pattern() string {
	return path.Join(e.Repo, e.Path, e.Name)
}

// DateValue returns the timestamp selected by field. ok is false when
// the field is absent on this entry.
func (e ArtifactEntry) DateValue(field DateField) (time.Time, bool) {
	var value time.Time
	switch field {
	case DateFieldModified:
		value = e.Modified
	case DateFieldUpdated:
		value = e.Updated
	default:
		value = e.Created
	}
	return value, !value.IsZero()
}
