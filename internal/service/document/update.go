package document

import (
	"context"
	"fmt"
	"log/slog"
)

// Update replaces the document's content and shallow-merges the metadata
// patch, snapshotting the prior state into version history. Updates to the
// same document are serialized; the read-modify-write never interleaves with
// another update or a vectorize run on that document.
func (s *Service) Update(ctx context.Context, input UpdateInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	key := input.DocumentID.String()
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	if err := s.store.Update(ctx, input.DocumentID, input.Content, input.MetadataPatch); err != nil {
		return fmt.Errorf("update document: %w", err)
	}

	s.log.InfoContext(ctx, "document updated",
		slog.String("document_id", key),
	)

	return nil
}
