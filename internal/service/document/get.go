package document

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/resilihub/docvault/internal/domain"
)

// Get returns the full document, version history included.
// Returns domain.ErrNotFound for an unknown ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// GetContent returns the document's current content and history.
// An unknown ID yields (nil, nil), not an error.
func (s *Service) GetContent(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	content, err := s.store.GetContent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	return content, nil
}
