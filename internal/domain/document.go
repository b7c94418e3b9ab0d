package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is a logical unit of organizational content: one current body
// plus an append-only version history. The ID is assigned at creation and
// never reused; OrgID is immutable after creation.
type Document struct {
	ID         uuid.UUID
	OrgID      uuid.UUID
	Type       DocumentType
	Owner      string
	Tags       []string
	FileFormat string
	Content    string
	Metadata   map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// VersionHistory is ordered oldest-first; its length equals the number
	// of successful updates applied to the document.
	VersionHistory []VersionEntry
}

// VersionEntry is an immutable snapshot of content and metadata taken at
// the moment immediately before an update overwrote them.
type VersionEntry struct {
	Content   string
	Metadata  map[string]any
	Timestamp time.Time
}

// Content is the read model returned by content lookups: the current body
// together with the full version history.
type Content struct {
	DocumentID     uuid.UUID
	Content        string
	Metadata       map[string]any
	VersionHistory []VersionEntry
}

// CloneMetadata returns a shallow copy of a metadata map. Values are shared;
// key set mutations on the copy do not affect the original. A nil map clones
// to an empty map so callers can merge into it unconditionally.
func CloneMetadata(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// MergeMetadata shallow-merges patch into base, patch values winning
// key-by-key. Neither input is mutated.
func MergeMetadata(base, patch map[string]any) map[string]any {
	out := CloneMetadata(base)
	for k, v := range patch {
		out[k] = v
	}
	return out
}
