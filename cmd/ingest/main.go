// Command ingest stores a text file as a new document, or replaces an
// existing document's content when -doc is given. It prints the document ID
// on success.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/resilihub/docvault/internal/adapter/mongo"
	mongocontent "github.com/resilihub/docvault/internal/adapter/mongo/content"
	"github.com/resilihub/docvault/internal/app"
	"github.com/resilihub/docvault/internal/config"
	"github.com/resilihub/docvault/internal/domain"
	"github.com/resilihub/docvault/internal/service/document"
	"github.com/resilihub/docvault/pkg/keylock"
)

func main() {
	var (
		orgFlag    = flag.String("org", "", "organization ID (uuid, required for new documents)")
		typeFlag   = flag.String("type", "", "document type (e.g. SOP, POLICY, INCIDENT_LOG)")
		ownerFlag  = flag.String("owner", "", "owner identity reference")
		formatFlag = flag.String("format", "txt", "file format label")
		tagsFlag   = flag.String("tags", "", "comma-separated tags")
		docFlag    = flag.String("doc", "", "existing document ID to update instead of creating")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Debug("starting ingest", slog.String("version", app.BuildVersion()))

	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Error("read input file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := mongo.NewClient(ctx, cfg.Mongo)
	if err != nil {
		logger.Error("connect to mongo", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck

	store := mongocontent.New(client, cfg.Mongo)
	svc := document.NewService(logger, store, keylock.New())

	if *docFlag != "" {
		docID, parseErr := uuid.Parse(*docFlag)
		if parseErr != nil {
			logger.Error("parse document ID", slog.String("error", parseErr.Error()))
			os.Exit(1)
		}

		if updErr := svc.Update(ctx, document.UpdateInput{
			DocumentID: docID,
			Content:    string(raw),
		}); updErr != nil {
			logger.Error("update document", slog.String("error", updErr.Error()))
			os.Exit(1)
		}

		logger.Info("document updated", slog.String("document_id", docID.String()))
		fmt.Println(docID)
		return
	}

	orgID, err := uuid.Parse(*orgFlag)
	if err != nil {
		logger.Error("parse org ID", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var tags []string
	if *tagsFlag != "" {
		tags = strings.Split(*tagsFlag, ",")
	}

	id, err := svc.Ingest(ctx, document.IngestInput{
		OrgID:      orgID,
		Type:       domain.DocumentType(*typeFlag),
		Owner:      *ownerFlag,
		Tags:       tags,
		FileFormat: *formatFlag,
		Content:    string(raw),
	})
	if err != nil {
		logger.Error("ingest document", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("document ingested",
		slog.String("document_id", id.String()),
		slog.Int("bytes", len(raw)),
	)
	fmt.Println(id)
}
