// Package content implements the content store in process memory.
// It backs unit tests and single-node development; the MongoDB adapter is
// the durable implementation. The store owns its data for the lifetime of
// the process: explicit construction, explicit Close, no package-level state.
package content

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/resilihub/docvault/internal/domain"
)

// Store holds one current content blob per document plus its version
// history, guarded by a single RWMutex. Per-document write serialization is
// the caller's job (the document service holds a keyed lock); the mutex here
// only protects map integrity.
type Store struct {
	mu     sync.RWMutex
	docs   map[uuid.UUID]*domain.Document
	closed bool

	now func() time.Time
}

// New creates an empty in-memory content store.
func New() *Store {
	return &Store{
		docs: make(map[uuid.UUID]*domain.Document),
		now:  time.Now,
	}
}

// Close releases the store's data. Subsequent operations fail with
// domain.ErrPersistence.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = nil
	s.closed = true
}

// Create assigns a fresh document ID, stores the content and metadata with
// an empty version history, and returns the new ID.
func (s *Store) Create(ctx context.Context, doc *domain.Document) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return uuid.Nil, fmt.Errorf("content store closed: %w", domain.ErrPersistence)
	}

	now := s.now().UTC()
	stored := copyDocument(doc)
	stored.ID = uuid.New()
	stored.VersionHistory = nil
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.docs[stored.ID] = stored
	return stored.ID, nil
}

// Get returns a copy of the document or domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, fmt.Errorf("content store closed: %w", domain.ErrPersistence)
	}

	doc, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return copyDocument(doc), nil
}

// Update snapshots the current content and metadata into the version
// history, replaces the content, shallow-merges the metadata patch (patch
// wins key-by-key), and bumps updated_at. Returns domain.ErrNotFound for an
// unknown ID.
func (s *Store) Update(ctx context.Context, id uuid.UUID, newContent string, metadataPatch map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("content store closed: %w", domain.ErrPersistence)
	}

	doc, ok := s.docs[id]
	if !ok {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}

	now := s.now().UTC()
	doc.VersionHistory = append(doc.VersionHistory, domain.VersionEntry{
		Content:   doc.Content,
		Metadata:  domain.CloneMetadata(doc.Metadata),
		Timestamp: now,
	})
	doc.Content = newContent
	doc.Metadata = domain.MergeMetadata(doc.Metadata, metadataPatch)
	doc.UpdatedAt = now

	return nil
}

// GetContent returns the current content plus the full version history, or
// (nil, nil) when the document does not exist. Absence is not an error here:
// callers distinguish "not found" from "found but empty" by the nil result.
func (s *Store) GetContent(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, fmt.Errorf("content store closed: %w", domain.ErrPersistence)
	}

	doc, ok := s.docs[id]
	if !ok {
		return nil, nil
	}

	return &domain.Content{
		DocumentID:     doc.ID,
		Content:        doc.Content,
		Metadata:       domain.CloneMetadata(doc.Metadata),
		VersionHistory: copyHistory(doc.VersionHistory),
	}, nil
}

// Len reports the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// copyDocument copies a document so callers cannot alias the stored state.
func copyDocument(doc *domain.Document) *domain.Document {
	out := *doc
	out.Tags = append([]string(nil), doc.Tags...)
	out.Metadata = domain.CloneMetadata(doc.Metadata)
	out.VersionHistory = copyHistory(doc.VersionHistory)
	return &out
}

func copyHistory(history []domain.VersionEntry) []domain.VersionEntry {
	if history == nil {
		return nil
	}
	out := make([]domain.VersionEntry, len(history))
	for i, entry := range history {
		out[i] = domain.VersionEntry{
			Content:   entry.Content,
			Metadata:  domain.CloneMetadata(entry.Metadata),
			Timestamp: entry.Timestamp,
		}
	}
	return out
}
