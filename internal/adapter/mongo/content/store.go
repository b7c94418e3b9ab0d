// Package content implements the content store on MongoDB.
// One collection holds one BSON document per logical document: the current
// content plus the append-only version_history array. History entries are
// pushed with $push, so the sequence is never reordered or rewritten.
package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/resilihub/docvault/internal/config"
	"github.com/resilihub/docvault/internal/domain"
)

// Store provides document content persistence backed by MongoDB.
type Store struct {
	coll *mongo.Collection
}

// New creates a content store over the configured database and collection.
func New(client *mongo.Client, cfg config.MongoConfig) *Store {
	return &Store{coll: client.Database(cfg.Database).Collection(cfg.Collection)}
}

// ---------------------------------------------------------------------------
// BSON document shape
// ---------------------------------------------------------------------------

type mongoDocument struct {
	DocumentID     string          `bson:"document_id"`
	OrgID          string          `bson:"org_id"`
	DocumentType   string          `bson:"document_type"`
	Owner          string          `bson:"owner"`
	Tags           []string        `bson:"tags"`
	FileFormat     string          `bson:"file_format"`
	Content        string          `bson:"content"`
	Metadata       map[string]any  `bson:"metadata"`
	VersionHistory []mongoVersion  `bson:"version_history"`
	CreatedAt      time.Time       `bson:"created_at"`
	UpdatedAt      time.Time       `bson:"updated_at"`
}

type mongoVersion struct {
	Content   string         `bson:"content"`
	Metadata  map[string]any `bson:"metadata"`
	Timestamp time.Time      `bson:"timestamp"`
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create assigns a fresh document ID and inserts the document with an empty
// version history and created_at = updated_at = now.
func (s *Store) Create(ctx context.Context, doc *domain.Document) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now().UTC()

	record := mongoDocument{
		DocumentID:     id.String(),
		OrgID:          doc.OrgID.String(),
		DocumentType:   doc.Type.String(),
		Owner:          doc.Owner,
		Tags:           doc.Tags,
		FileFormat:     doc.FileFormat,
		Content:        doc.Content,
		Metadata:       domain.CloneMetadata(doc.Metadata),
		VersionHistory: []mongoVersion{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := s.coll.InsertOne(ctx, record); err != nil {
		return uuid.Nil, fmt.Errorf("insert document: %w: %w", domain.ErrPersistence, err)
	}

	return id, nil
}

// Get returns the document or domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	var record mongoDocument
	err := s.coll.FindOne(ctx, bson.M{"document_id": id.String()}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("find document %s: %w: %w", id, domain.ErrPersistence, err)
	}

	return toDomainDocument(record)
}

// Update snapshots the current content and metadata into version_history,
// replaces the content, shallow-merges the metadata patch, and bumps
// updated_at. The caller serializes concurrent updates per document; the
// write itself is a single update command.
func (s *Store) Update(ctx context.Context, id uuid.UUID, newContent string, metadataPatch map[string]any) error {
	var current mongoDocument
	err := s.coll.FindOne(ctx, bson.M{"document_id": id.String()}).Decode(&current)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("find document %s: %w: %w", id, domain.ErrPersistence, err)
	}

	now := time.Now().UTC()
	entry := mongoVersion{
		Content:   current.Content,
		Metadata:  domain.CloneMetadata(current.Metadata),
		Timestamp: now,
	}

	update := bson.M{
		"$set": bson.M{
			"content":    newContent,
			"metadata":   domain.MergeMetadata(current.Metadata, metadataPatch),
			"updated_at": now,
		},
		"$push": bson.M{"version_history": entry},
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"document_id": id.String()}, update)
	if err != nil {
		return fmt.Errorf("update document %s: %w: %w", id, domain.ErrPersistence, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// GetContent returns the current content plus the full version history, or
// (nil, nil) when the document does not exist.
func (s *Store) GetContent(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	var record mongoDocument
	err := s.coll.FindOne(ctx, bson.M{"document_id": id.String()}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find document %s: %w: %w", id, domain.ErrPersistence, err)
	}

	docID, err := uuid.Parse(record.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("stored document_id %q: %w", record.DocumentID, err)
	}

	return &domain.Content{
		DocumentID:     docID,
		Content:        record.Content,
		Metadata:       record.Metadata,
		VersionHistory: toDomainHistory(record.VersionHistory),
	}, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers: bson -> domain
// ---------------------------------------------------------------------------

func toDomainDocument(record mongoDocument) (*domain.Document, error) {
	id, err := uuid.Parse(record.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("stored document_id %q: %w", record.DocumentID, err)
	}
	orgID, err := uuid.Parse(record.OrgID)
	if err != nil {
		return nil, fmt.Errorf("stored org_id %q: %w", record.OrgID, err)
	}

	return &domain.Document{
		ID:             id,
		OrgID:          orgID,
		Type:           domain.DocumentType(record.DocumentType),
		Owner:          record.Owner,
		Tags:           record.Tags,
		FileFormat:     record.FileFormat,
		Content:        record.Content,
		Metadata:       record.Metadata,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
		VersionHistory: toDomainHistory(record.VersionHistory),
	}, nil
}

func toDomainHistory(entries []mongoVersion) []domain.VersionEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]domain.VersionEntry, len(entries))
	for i, e := range entries {
		out[i] = domain.VersionEntry{
			Content:   e.Content,
			Metadata:  e.Metadata,
			Timestamp: e.Timestamp,
		}
	}
	return out
}
