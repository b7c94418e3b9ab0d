// Package chunk implements the chunk store using PostgreSQL.
// A document's chunk set is always written wholesale: replacement deletes
// the prior set and inserts the new one inside a single transaction, so
// readers never observe a half-old/half-new mix.
package chunk

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resilihub/docvault/internal/adapter/postgres"
	"github.com/resilihub/docvault/internal/domain"
)

// Repo provides chunk persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new chunk repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		tx:   postgres.NewTxManager(pool),
	}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Replace swaps the document's chunk set for the given one, all-or-nothing.
// An empty set just deletes the prior chunks. Other documents' chunk sets
// are untouched.
func (r *Repo) Replace(ctx context.Context, documentID uuid.UUID, chunks []domain.Chunk) error {
	return r.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q := postgres.QuerierFromCtx(txCtx, r.pool)

		if _, err := q.Exec(txCtx,
			`DELETE FROM document_chunks WHERE document_id = $1`, documentID,
		); err != nil {
			return postgres.MapError(err, "chunks", documentID.String())
		}

		if len(chunks) == 0 {
			return nil
		}

		insert := builder.
			Insert("document_chunks").
			Columns("document_id", "chunk_id", "chunk_index", "chunk_text", "embedding")
		for _, c := range chunks {
			insert = insert.Values(c.DocumentID, c.ChunkID, c.Index, c.Text, c.Embedding)
		}

		sql, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("build chunk insert: %w", err)
		}

		if _, err := q.Exec(txCtx, sql, args...); err != nil {
			return postgres.MapError(err, "chunks", documentID.String())
		}

		return nil
	})
}

// UpdateEmbedding overwrites the embedding of one chunk.
// Returns domain.ErrNotFound if the chunk ID is unknown.
func (r *Repo) UpdateEmbedding(ctx context.Context, chunkID string, vector []float32) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE document_chunks SET embedding = $1 WHERE chunk_id = $2`,
		vector, chunkID,
	)
	if err != nil {
		return postgres.MapError(err, "chunk", chunkID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chunk %s: %w", chunkID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByDocument returns the document's chunks ordered by chunk index.
// Returns an empty slice (not nil) when the document has no chunks.
func (r *Repo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.Chunk, error) {
	query := builder.
		Select("document_id", "chunk_id", "chunk_index", "chunk_text", "embedding").
		From("document_chunks").
		Where(sq.Eq{"document_id": documentID}).
		OrderBy("chunk_index")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build chunk select: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "chunks", documentID.String())
	}
	defer rows.Close()

	result, err := scanChunks(rows)
	if err != nil {
		return nil, postgres.MapError(err, "chunks", documentID.String())
	}

	return result, nil
}

// Count returns the number of chunks stored for a document.
func (r *Repo) Count(ctx context.Context, documentID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx,
		`SELECT count(*) FROM document_chunks WHERE document_id = $1`, documentID,
	).Scan(&count)
	if err != nil {
		return 0, postgres.MapError(err, "chunks", documentID.String())
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanChunks(rows pgx.Rows) ([]domain.Chunk, error) {
	var result []domain.Chunk
	for rows.Next() {
		var c domain.Chunk
		if err := rows.Scan(&c.DocumentID, &c.ChunkID, &c.Index, &c.Text, &c.Embedding); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Chunk{}
	}

	return result, nil
}
