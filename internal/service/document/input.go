package document

import (
	"strings"

	"github.com/google/uuid"

	"github.com/resilihub/docvault/internal/domain"
)

// IngestInput holds the parameters for ingesting a new document.
type IngestInput struct {
	OrgID      uuid.UUID
	Type       domain.DocumentType
	Owner      string
	Tags       []string
	FileFormat string
	Content    string
	Metadata   map[string]any
}

// Validate checks all fields and collects all errors.
func (i IngestInput) Validate() error {
	var errs []domain.FieldError

	if i.OrgID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "org_id", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "document_type", Message: "unknown document type"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for updating a document's content.
// MetadataPatch is shallow-merged into the current metadata; nil leaves
// metadata unchanged.
type UpdateInput struct {
	DocumentID    uuid.UUID
	Content       string
	MetadataPatch map[string]any
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.DocumentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "document_id", Message: "required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
