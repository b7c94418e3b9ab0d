package content_test

// Integration tests for the MongoDB content store. They need a running
// MongoDB and are skipped unless MONGO_TEST_URI is set, e.g.
//
//	MONGO_TEST_URI=mongodb://localhost:27017 go test ./internal/adapter/mongo/...

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	mongoadapter "github.com/resilihub/docvault/internal/adapter/mongo"
	"github.com/resilihub/docvault/internal/adapter/mongo/content"
	"github.com/resilihub/docvault/internal/config"
	"github.com/resilihub/docvault/internal/domain"
)

func newStore(t *testing.T) *content.Store {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set; skipping MongoDB integration tests")
	}

	cfg := config.MongoConfig{
		URI:            uri,
		Database:       "docvault_test",
		Collection:     "documents_" + uuid.New().String()[:8],
		ConnectTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	client, err := mongoadapter.NewClient(ctx, cfg)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Database(cfg.Database).Collection(cfg.Collection).Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	return content.New(client, cfg)
}

func testDoc() *domain.Document {
	return &domain.Document{
		OrgID:      uuid.New(),
		Type:       domain.DocumentTypeSOP,
		Owner:      "ops@example.com",
		Tags:       []string{"runbook"},
		FileFormat: "text",
		Content:    "Step one. Step two.",
		Metadata:   map[string]any{"title": "Failover SOP"},
	}
}

func TestStore_CreateGetRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, testDoc())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Content != "Step one. Step two." {
		t.Errorf("Content = %q", got.Content)
	}
	if got.Type != domain.DocumentTypeSOP {
		t.Errorf("Type = %q", got.Type)
	}
	if len(got.VersionHistory) != 0 {
		t.Errorf("fresh document history length = %d, want 0", len(got.VersionHistory))
	}
}

func TestStore_Get_NotFound(t *testing.T) {
	store := newStore(t)

	_, err := store.Get(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Update_AppendsHistory(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	doc := testDoc()
	doc.Metadata = map[string]any{"k": "old", "j": int32(1)}
	id, err := store.Create(ctx, doc)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.Update(ctx, id, "X", map[string]any{"k": "v"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := store.GetContent(ctx, id)
	if err != nil {
		t.Fatalf("GetContent: %v", err)
	}
	if got == nil {
		t.Fatal("GetContent returned nil for existing document")
	}
	if got.Content != "X" {
		t.Errorf("Content = %q, want X", got.Content)
	}
	if got.Metadata["k"] != "v" {
		t.Errorf(`Metadata["k"] = %v, want "v"`, got.Metadata["k"])
	}
	if got.Metadata["j"] != int32(1) {
		t.Errorf(`Metadata["j"] = %v, want 1`, got.Metadata["j"])
	}
	if len(got.VersionHistory) != 1 {
		t.Fatalf("history length = %d, want 1", len(got.VersionHistory))
	}
	snap := got.VersionHistory[0]
	if snap.Content != "Step one. Step two." {
		t.Errorf("history content = %q, want the pre-update body", snap.Content)
	}
	if snap.Metadata["k"] != "old" {
		t.Errorf(`history metadata["k"] = %v, want "old"`, snap.Metadata["k"])
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	store := newStore(t)

	err := store.Update(context.Background(), uuid.New(), "x", nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_GetContent_AbsentIsNil(t *testing.T) {
	store := newStore(t)

	got, err := store.GetContent(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent document, got %+v", got)
	}
}
