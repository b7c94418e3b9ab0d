// Package vectorize derives a document's chunk set from its current content
// and manages the chunk records downstream embedding works against. It never
// computes embeddings itself; an external embedding service fills them in
// through UpdateEmbedding.
package vectorize

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/resilihub/docvault/internal/config"
	"github.com/resilihub/docvault/internal/domain"
	"github.com/resilihub/docvault/pkg/keylock"
)

type contentReader interface {
	GetContent(ctx context.Context, id uuid.UUID) (*domain.Content, error)
}

type chunkStore interface {
	Replace(ctx context.Context, documentID uuid.UUID, chunks []domain.Chunk) error
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.Chunk, error)
	UpdateEmbedding(ctx context.Context, chunkID string, vector []float32) error
}

// Service provides vectorization operations.
type Service struct {
	content contentReader
	chunks  chunkStore
	chunker *Chunker
	locks   *keylock.KeyLock
	log     *slog.Logger
}

// NewService creates a new Vectorize service. An invalid chunker config is
// rejected here, before any document is accepted. The locks argument should
// be the same lock set the document service uses, so Vectorize and Update on
// one document serialize against each other.
func NewService(
	log *slog.Logger,
	cfg config.ChunkerConfig,
	content contentReader,
	chunks chunkStore,
	locks *keylock.KeyLock,
) (*Service, error) {
	chunker, err := NewChunker(cfg)
	if err != nil {
		return nil, fmt.Errorf("chunker config: %w", err)
	}

	return &Service{
		content: content,
		chunks:  chunks,
		chunker: chunker,
		locks:   locks,
		log:     log.With("service", "vectorize"),
	}, nil
}

// Vectorize recomputes the document's chunk set from its current content and
// replaces any prior set as one batch. Returns the ordered chunk IDs. A
// nonexistent document yields an empty sequence, not an error.
func (s *Service) Vectorize(ctx context.Context, documentID uuid.UUID) ([]string, error) {
	key := documentID.String()
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	content, err := s.content.GetContent(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	if content == nil {
		return []string{}, nil
	}

	texts, err := s.chunker.Chunk(content.Content)
	if err != nil {
		return nil, fmt.Errorf("chunk content: %w", err)
	}

	chunks := make([]domain.Chunk, 0, len(texts))
	ids := make([]string, 0, len(texts))
	for i, text := range texts {
		chunkID := domain.ChunkID(documentID, i)
		chunks = append(chunks, domain.Chunk{
			DocumentID: documentID,
			ChunkID:    chunkID,
			Index:      i,
			Text:       text,
		})
		ids = append(ids, chunkID)
	}

	if err := s.chunks.Replace(ctx, documentID, chunks); err != nil {
		return nil, fmt.Errorf("replace chunks: %w", err)
	}

	s.log.InfoContext(ctx, "document vectorized",
		slog.String("document_id", key),
		slog.Int("chunks", len(ids)),
	)

	return ids, nil
}

// GetChunks lists the document's current chunk records.
func (s *Service) GetChunks(ctx context.Context, documentID uuid.UUID) ([]domain.Chunk, error) {
	chunks, err := s.chunks.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("list chunks: %w", err)
	}
	return chunks, nil
}

// UpdateEmbedding attaches an externally computed vector to a chunk.
// Returns domain.ErrNotFound for an unknown chunk ID.
func (s *Service) UpdateEmbedding(ctx context.Context, chunkID string, vector []float32) error {
	if err := s.chunks.UpdateEmbedding(ctx, chunkID, vector); err != nil {
		return fmt.Errorf("update embedding: %w", err)
	}

	s.log.DebugContext(ctx, "embedding updated",
		slog.String("chunk_id", chunkID),
		slog.Int("dimensions", len(vector)),
	)

	return nil
}
