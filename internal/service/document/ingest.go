package document

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/resilihub/docvault/internal/domain"
)

// Ingest stores a new document and returns its assigned ID. The document
// starts with an empty version history; chunking happens only on an explicit
// vectorize call, never here.
func (s *Service) Ingest(ctx context.Context, input IngestInput) (uuid.UUID, error) {
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	doc := &domain.Document{
		OrgID:      input.OrgID,
		Type:       input.Type,
		Owner:      input.Owner,
		Tags:       normalizeTags(input.Tags),
		FileFormat: input.FileFormat,
		Content:    input.Content,
		Metadata:   domain.CloneMetadata(input.Metadata),
	}

	id, err := s.store.Create(ctx, doc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create document: %w", err)
	}

	s.log.InfoContext(ctx, "document ingested",
		slog.String("document_id", id.String()),
		slog.String("org_id", input.OrgID.String()),
		slog.String("document_type", input.Type.String()),
	)

	return id, nil
}
