package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Chunk is a bounded, possibly-overlapping substring of a document's content,
// derived by vectorization and addressed by document ID and zero-based index.
// Chunks have no lifecycle of their own: re-vectorizing or deleting the
// document replaces or invalidates the whole set.
type Chunk struct {
	DocumentID uuid.UUID
	ChunkID    string
	Index      int
	Text       string

	// Embedding is nil until the external embedding service fills it in.
	Embedding []float32
}

// ChunkID builds the canonical chunk identifier for a document and index.
// The format "{document_id}-chunk-{index}" is the one externally visible
// string contract of the pipeline; indices are zero-based and gapless.
func ChunkID(documentID uuid.UUID, index int) string {
	return fmt.Sprintf("%s-chunk-%d", documentID, index)
}
