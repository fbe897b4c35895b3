package types

// FileSpec is the JSON document consumed by `jf rt del --spec`. The
// shape must stay exactly {"files": [{"pattern": "..."}]}.
type FileSpec struct {
	Files []FileSpecEntry `json:"files"`
}

type FileSpecEntry struct {
	Pattern string `json:"pattern"`
}
