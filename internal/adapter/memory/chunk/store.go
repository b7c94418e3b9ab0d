// Package chunk implements the chunk store in process memory.
// Chunk sets are derived artifacts: holding them forever is a leak, so the
// store is backed by an expirable LRU with a document cap and TTL. Eviction
// drops a whole document's chunk set at once, never part of it.
package chunk

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/resilihub/docvault/internal/domain"
)

const (
	// DefaultMaxDocuments caps how many documents' chunk sets are retained.
	DefaultMaxDocuments = 1024
	// DefaultTTL bounds how long an untouched chunk set is retained.
	DefaultTTL = 24 * time.Hour
)

// Store keeps per-document chunk sets in an expirable LRU. Chunk IDs embed
// the owning document ID ("{document_id}-chunk-{index}"), so single-chunk
// lookups parse the ID instead of maintaining a secondary index.
type Store struct {
	// mu guards in-place mutation of stored chunk values; the LRU itself is
	// goroutine-safe but returns stored slices by reference.
	mu    sync.RWMutex
	cache *expirable.LRU[uuid.UUID, []domain.Chunk]
}

// New creates a chunk store retaining at most maxDocuments chunk sets, each
// for at most ttl. maxDocuments <= 0 and ttl <= 0 fall back to the defaults.
func New(maxDocuments int, ttl time.Duration) *Store {
	if maxDocuments <= 0 {
		maxDocuments = DefaultMaxDocuments
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		cache: expirable.NewLRU[uuid.UUID, []domain.Chunk](maxDocuments, nil, ttl),
	}
}

// Replace atomically swaps the document's chunk set for the given one.
// An empty set removes the document's chunks entirely.
func (s *Store) Replace(ctx context.Context, documentID uuid.UUID, chunks []domain.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(chunks) == 0 {
		s.cache.Remove(documentID)
		return nil
	}

	stored := make([]domain.Chunk, len(chunks))
	for i, c := range chunks {
		stored[i] = c
		stored[i].Embedding = append([]float32(nil), c.Embedding...)
	}
	s.cache.Add(documentID, stored)
	return nil
}

// ListByDocument returns the document's chunk set in insertion order.
// A document with no chunks yields an empty slice, not an error.
func (s *Store) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chunks, ok := s.cache.Get(documentID)
	if !ok {
		return []domain.Chunk{}, nil
	}

	out := make([]domain.Chunk, len(chunks))
	for i, c := range chunks {
		out[i] = c
		out[i].Embedding = append([]float32(nil), c.Embedding...)
	}
	return out, nil
}

// UpdateEmbedding overwrites the embedding of one chunk.
// Returns domain.ErrNotFound for an unknown (or already evicted) chunk ID.
func (s *Store) UpdateEmbedding(ctx context.Context, chunkID string, vector []float32) error {
	docID, err := documentIDFromChunkID(chunkID)
	if err != nil {
		return fmt.Errorf("chunk %s: %w", chunkID, domain.ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	chunks, ok := s.cache.Get(docID)
	if !ok {
		return fmt.Errorf("chunk %s: %w", chunkID, domain.ErrNotFound)
	}

	for i := range chunks {
		if chunks[i].ChunkID == chunkID {
			chunks[i].Embedding = append([]float32(nil), vector...)
			return nil
		}
	}
	return fmt.Errorf("chunk %s: %w", chunkID, domain.ErrNotFound)
}

// Len reports how many documents currently have retained chunk sets.
func (s *Store) Len() int {
	return s.cache.Len()
}

// documentIDFromChunkID recovers the owning document ID from the canonical
// "{document_id}-chunk-{index}" form.
func documentIDFromChunkID(chunkID string) (uuid.UUID, error) {
	idx := strings.LastIndex(chunkID, "-chunk-")
	if idx < 0 {
		return uuid.Nil, fmt.Errorf("malformed chunk ID %q", chunkID)
	}
	return uuid.Parse(chunkID[:idx])
}
