// Package document orchestrates ingest, update and read operations over the
// content store. Writes to the same document are serialized through a keyed
// lock; distinct documents proceed in parallel.
package document

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/resilihub/docvault/internal/domain"
	"github.com/resilihub/docvault/pkg/keylock"
)

type contentStore interface {
	Create(ctx context.Context, doc *domain.Document) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	Update(ctx context.Context, id uuid.UUID, newContent string, metadataPatch map[string]any) error
	GetContent(ctx context.Context, id uuid.UUID) (*domain.Content, error)
}

// Service provides document lifecycle operations.
type Service struct {
	store contentStore
	locks *keylock.KeyLock
	log   *slog.Logger
}

// NewService creates a new Document service. The locks argument lets callers
// share one lock set between this service and the vectorize service so that
// Update and Vectorize on the same document serialize against each other.
func NewService(log *slog.Logger, store contentStore, locks *keylock.KeyLock) *Service {
	return &Service{
		store: store,
		locks: locks,
		log:   log.With("service", "document"),
	}
}

// normalizeTags trims each tag and drops empties, preserving order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
