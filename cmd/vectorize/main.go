// Command vectorize recomputes the chunk sets of one or more documents,
// replacing any prior chunks. Documents are processed concurrently with a
// bounded worker count; a failure on one document stops the run.
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
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/resilihub/docvault/internal/adapter/mongo"
	mongocontent "github.com/resilihub/docvault/internal/adapter/mongo/content"
	"github.com/resilihub/docvault/internal/adapter/postgres"
	pgchunk "github.com/resilihub/docvault/internal/adapter/postgres/chunk"
	"github.com/resilihub/docvault/internal/app"
	"github.com/resilihub/docvault/internal/config"
	"github.com/resilihub/docvault/internal/service/vectorize"
	"github.com/resilihub/docvault/pkg/keylock"
)

func main() {
	concurrency := flag.Int("concurrency", 4, "maximum documents processed in parallel")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <document-id> [document-id ...]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	ids := make([]uuid.UUID, 0, flag.NArg())
	for _, arg := range flag.Args() {
		id, err := uuid.Parse(arg)
		if err != nil {
			log.Fatalf("parse document ID %q: %v", arg, err)
		}
		ids = append(ids, id)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Debug("starting vectorize", slog.String("version", app.BuildVersion()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	client, err := mongo.NewClient(ctx, cfg.Mongo)
	if err != nil {
		logger.Error("connect to mongo", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc, err := vectorize.NewService(
		logger,
		cfg.Chunker,
		mongocontent.New(client, cfg.Mongo),
		pgchunk.New(pool),
		keylock.New(),
	)
	if err != nil {
		logger.Error("construct vectorize service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(*concurrency)

	for _, id := range ids {
		g.Go(func() error {
			chunkIDs, vErr := svc.Vectorize(gCtx, id)
			if vErr != nil {
				return fmt.Errorf("vectorize %s: %w", id, vErr)
			}
			logger.Info("document vectorized",
				slog.String("document_id", id.String()),
				slog.Int("chunks", len(chunkIDs)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("vectorize run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("vectorize run completed", slog.Int("documents", len(ids)))
}
