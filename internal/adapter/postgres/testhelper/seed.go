package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resilihub/docvault/internal/domain"
)

// MakeChunks builds a gapless, zero-indexed chunk set for a document.
// Texts must be non-empty or the insert will trip a check constraint.
func MakeChunks(documentID uuid.UUID, texts ...string) []domain.Chunk {
	chunks := make([]domain.Chunk, 0, len(texts))
	for i, text := range texts {
		chunks = append(chunks, domain.Chunk{
			DocumentID: documentID,
			ChunkID:    domain.ChunkID(documentID, i),
			Index:      i,
			Text:       text,
		})
	}
	return chunks
}

// SeedChunks inserts a chunk set for a document directly, bypassing the repo.
// Returns the inserted chunks.
func SeedChunks(t *testing.T, pool *pgxpool.Pool, documentID uuid.UUID, texts ...string) []domain.Chunk {
	t.Helper()
	ctx := context.Background()

	chunks := MakeChunks(documentID, texts...)
	for _, c := range chunks {
		_, err := pool.Exec(ctx,
			`INSERT INTO document_chunks (document_id, chunk_id, chunk_index, chunk_text, embedding)
			 VALUES ($1, $2, $3, $4, $5)`,
			c.DocumentID, c.ChunkID, c.Index, c.Text, c.Embedding,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedChunks insert: %v", err)
		}
	}

	return chunks
}
